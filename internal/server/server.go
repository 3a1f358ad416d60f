package server

import (
	"shopcart/internal/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて全ルートを登録する。
func New(publicDir string, cartH *handler.CartHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	RegisterRoutes(e, cartH, orderH)

	// フロントの静的ファイル（order-details.html等）
	if publicDir != "" {
		e.Static("/", publicDir)
	}

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
