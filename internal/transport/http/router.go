package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/crumbco/foodexpress/internal/handlers"
)

type Deps struct {
	MenuHandler     *handlers.MenuHandler
	CartHandler     *handlers.CartHandler
	CheckoutHandler *handlers.CheckoutHandler
	AdminHandler    *handlers.AdminHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.GET("/menu", d.MenuHandler.GetMenu)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:id", d.CartHandler.SetQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)

	v1.POST("/checkout", d.CheckoutHandler.PlaceOrder)

	v1.POST("/admin/login", d.AdminHandler.Login)
	v1.POST("/admin/logout", d.AdminHandler.Logout)

	dashboard := v1.Group("/admin", d.AdminHandler.RequireSession)
	dashboard.GET("/orders", d.AdminHandler.ListOrders)
	dashboard.GET("/orders/export", d.AdminHandler.ExportOrders)
	dashboard.GET("/orders/:id", d.AdminHandler.GetOrder)
}
