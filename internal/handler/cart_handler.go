package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddProductRequest struct {
	ProductName     string  `json:"productName"`
	ProductPrice    float64 `json:"productPrice"`
	ProductQuantity int64   `json:"productQuantity"`
}

// /api/cart 配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cart")

	g.POST("/addProduct", h.addProduct)
	g.GET("/viewCart", h.viewCart)
	g.GET("/calculateTotal", h.calculateTotal)
	g.DELETE("/removeProduct/:productName", h.removeProduct)
	g.DELETE("/clearCart", h.clearCart)
}

func (h *CartHandler) addProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	msg, err := h.uc.AddProduct(c.Request().Context(), usecase.AddProductInput{
		Name:     req.ProductName,
		Price:    req.ProductPrice,
		Quantity: req.ProductQuantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.String(http.StatusCreated, msg)
}

func (h *CartHandler) viewCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.ViewCart())
}

func (h *CartHandler) calculateTotal(c echo.Context) error {
	total := h.uc.CalculateTotal()

	return c.String(http.StatusOK, "Total amount: "+strconv.FormatFloat(total, 'f', -1, 64))
}

func (h *CartHandler) removeProduct(c echo.Context) error {
	name := c.Param("productName")

	removed, err := h.uc.RemoveProduct(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}

	if !removed {
		return c.String(http.StatusOK, "Product not found in the cart.")
	}
	return c.String(http.StatusOK, fmt.Sprintf("%s removed from the cart.", name))
}

func (h *CartHandler) clearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context()); err != nil {
		return writeError(c, err)
	}

	return c.String(http.StatusOK, "Cart cleared successfully.")
}
