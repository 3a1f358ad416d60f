package usecase

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"
)

// OrderUsecase は /api/orders の業務ロジック。
// 注文のitemsはリクエストのスナップショットをそのまま保存し、
// ライブカートは読みもクリアもしない（API契約として分離されている）。
type OrderUsecase struct {
	orders repo.OrderRepository
}

func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

type OrderItemInput struct {
	Name     string
	Price    float64
	Quantity int64
}

type PlaceOrderInput struct {
	OrderID            int64
	CustomerCareNumber string
	Items              []OrderItemInput
}

type PlaceOrderOutput struct {
	OrderID int64 `json:"orderId"`
}

type OrderItemOutput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type OrderOutput struct {
	OrderID            int64             `json:"orderId"`
	CustomerCareNumber string            `json:"customerCareNumber"`
	Items              []OrderItemOutput `json:"items"`
}

// PlaceOrder は注文を1件保存する。
// orderIdの一意性は呼び出し側の責任で、ストアでは重複を弾かない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if in.OrderID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid orderId")
	}
	if strings.TrimSpace(in.CustomerCareNumber) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "customerCareNumber required")
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "item name required")
		}
		if it.Quantity < 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "item quantity must be >= 0")
		}
		if math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item price")
		}
	}

	now := time.Now()

	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, model.OrderItem{
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			CreatedAt: now,
		})
	}

	order := model.Order{
		OrderNumber:        in.OrderID,
		CustomerCareNumber: strings.TrimSpace(in.CustomerCareNumber),
		CreatedAt:          now,
	}

	if _, err := u.orders.Create(ctx, order, items); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{OrderID: in.OrderID}, nil
}

// ListOrders は全注文を明細込みで返す。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orders.ListItemsByOrderID(ctx, o.ID)
		if err != nil {
			return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}

	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	return OrderOutput{
		OrderID:            o.OrderNumber,
		CustomerCareNumber: o.CustomerCareNumber,
		Items:              outItems,
	}
}
