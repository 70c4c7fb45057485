package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crumbco/foodexpress/internal/cart"
	"github.com/crumbco/foodexpress/internal/models"
)

type CartHandler struct {
	Cart *cart.Cart
}

type cartView struct {
	Items  []models.CartLine `json:"items"`
	Count  int               `json:"count"`
	Totals cart.Totals       `json:"totals"`
}

func (h *CartHandler) view() cartView {
	lines := h.Cart.Lines()
	if lines == nil {
		lines = []models.CartLine{}
	}
	return cartView{Items: lines, Count: h.Cart.Count(), Totals: h.Cart.Totals()}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

// AddToCart adds one unit of a menu item. Unknown item ids are a silent no-op,
// mirroring a stale button on an old menu page.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		ItemID int `json:"item_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	h.Cart.Add(req.ItemID)
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	h.Cart.SetQuantity(id, req.Quantity)
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	h.Cart.Remove(id)
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.Cart.Clear()
	return c.JSON(http.StatusOK, h.view())
}
