package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	User         *handler.UserHandler
	Role         *handler.RoleHandler
	Category     *handler.CategoryHandler
	Product      *handler.ProductHandler
	Variant      *handler.VariantHandler
	Unit         *handler.UnitHandler
	Inventory    *handler.InventoryHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Payment      *handler.PaymentHandler
	Shipping     *handler.ShippingHandler
	Address      *handler.AddressHandler
	Review       *handler.ReviewHandler
	SiteProperty *handler.SitePropertyHandler
}

// 全ルートを /api 配下へ
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	h.User.RegisterRoutes(api)
	h.Role.RegisterRoutes(api)
	h.Category.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Variant.RegisterRoutes(api)
	h.Unit.RegisterRoutes(api)
	h.Inventory.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api)
	h.Order.RegisterRoutes(api)
	h.Payment.RegisterRoutes(api)
	h.Shipping.RegisterRoutes(api)
	h.Address.RegisterRoutes(api)
	h.Review.RegisterRoutes(api)
	h.SiteProperty.RegisterRoutes(api)
}
