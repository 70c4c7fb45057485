package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crumbco/foodexpress/internal/catalog"
	"github.com/crumbco/foodexpress/internal/models"
)

type MenuHandler struct {
	Catalog *catalog.Catalog
}

// GetMenu lists the catalog, optionally narrowed by ?q=, ?category= and
// ?price= (a band like "10-20" or "20+").
func (h *MenuHandler) GetMenu(c echo.Context) error {
	q := c.QueryParam("q")
	category := c.QueryParam("category")
	price := c.QueryParam("price")

	if q == "" && (category == "" || category == "all") && (price == "" || price == "all") {
		return c.JSON(http.StatusOK, h.Catalog.All())
	}
	items := h.Catalog.Filter(q, category, price)
	if items == nil {
		items = []models.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}
