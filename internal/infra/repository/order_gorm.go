package repository

import (
	"context"

	"shopcart/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文と明細を1トランザクションで作成。部分書き込みは残さない。
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 全注文を作成順で返す
func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

func (r *OrderGormRepository) ListItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.OrderItem{}, err
	}

	return items, nil
}
