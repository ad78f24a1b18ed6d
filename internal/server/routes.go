package server

import (
	"shopadmin/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Brand    *handler.BrandHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Order    *handler.OrderHandler
	Admin    *handler.AdminHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Brand.RegisterRoutes(e)
	h.Category.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Customer.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Admin.RegisterRoutes(e)
}
