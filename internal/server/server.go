package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func New(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, h Handlers) error {
	return New(h).Start(addr)
}
