package handler

import (
	"net/http"

	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type PlaceOrderRequest struct {
	OrderID            int64              `json:"orderId"`
	CustomerCareNumber string             `json:"customerCareNumber"`
	Items              []OrderItemRequest `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")

	g.POST("/placeOrder", h.placeOrder)
	g.GET("", h.list)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		OrderID:            req.OrderID,
		CustomerCareNumber: req.CustomerCareNumber,
		Items:              items,
	})
	if err != nil {
		// 永続化失敗は詳細を出さない
		if he, ok := usecase.AsHTTPError(err); ok && he.Status == http.StatusInternalServerError {
			return c.String(http.StatusInternalServerError, "Error placing order")
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, "Error fetching orders")
	}
	return c.JSON(http.StatusOK, out)
}
