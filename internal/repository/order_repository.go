package repository

import (
	"context"

	"shopcart/internal/domain/model"
)

// OrderRepository は注文の永続化（保存・一覧）だけを約束。
type OrderRepository interface {
	// 注文と明細を1トランザクションで作成し、orders.idを返す
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error)
	List(ctx context.Context) ([]model.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
