package repository

import (
	"context"
	"errors"
	"time"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRecordGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductRecordGormRepository(db *gorm.DB) *ProductRecordGormRepository {
	return &ProductRecordGormRepository{db: db}
}

// 同一name_keyは数量加算（価格は既存行のまま）、無ければ新規作成。
// name_keyにはunique indexがあるので、同時INSERTで負けた側は読み直して加算する。
func (r *ProductRecordGormRepository) UpsertByNameKey(ctx context.Context, nameKey string, name string, price float64, addQty int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.ProductRecord

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name_key = ?", nameKey).
			First(&rec).Error

		if err == nil {
			return r.addQuantity(tx, rec.ID, rec.Quantity+addQty)
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		newRec := model.ProductRecord{
			Name:      name,
			NameKey:   nameKey,
			Price:     price,
			Quantity:  addQty,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Create(&newRec).Error; err != nil {
			// 競合（23505）は相手のINSERTが勝っただけなので加算し直す
			if isUniqueViolation(err) {
				retryErr := tx.
					Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("name_key = ?", nameKey).
					First(&rec).Error
				if retryErr != nil {
					return err
				}
				return r.addQuantity(tx, rec.ID, rec.Quantity+addQty)
			}
			return err
		}

		return nil
	})
}

func (r *ProductRecordGormRepository) addQuantity(tx *gorm.DB, id int64, newQty int64) error {
	res := tx.Model(&model.ProductRecord{}).
		Where("id = ?", id).
		Update("quantity", newQty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// name_keyで削除。0件でも成功扱い（冪等）。
func (r *ProductRecordGormRepository) DeleteByNameKey(ctx context.Context, nameKey string) error {
	return r.db.WithContext(ctx).
		Where("name_key = ?", nameKey).
		Delete(&model.ProductRecord{}).Error
}

// 全件削除（カートのクリアに対応）
func (r *ProductRecordGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ProductRecord{}).Error
}

func (r *ProductRecordGormRepository) List(ctx context.Context) ([]model.ProductRecord, error) {
	var recs []model.ProductRecord

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&recs).Error; err != nil {
		return []model.ProductRecord{}, err
	}

	return recs, nil
}

// Postgresのunique_violationか
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
