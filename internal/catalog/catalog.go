// Package catalog holds the static menu the storefront sells from. The item
// list is fixed at startup; nothing here mutates it afterwards.
package catalog

import (
	"strconv"
	"strings"

	"github.com/crumbco/foodexpress/internal/models"
)

type Catalog struct {
	items []models.MenuItem
	byID  map[int]models.MenuItem
}

func New(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]models.MenuItem, len(items)),
		byID:  make(map[int]models.MenuItem, len(items)),
	}
	copy(c.items, items)
	for _, it := range c.items {
		c.byID[it.ID] = it
	}
	return c
}

// Default returns the built-in FoodExpress menu.
func Default() *Catalog {
	return New(defaultMenu)
}

func (c *Catalog) All() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ByID(id int) (models.MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Filter narrows the menu by a free-text search over name and description, an
// exact category, and a price band. Empty search, category "all"/"" and price
// band "all"/"" each mean "no filter". Price bands come in two shapes:
// "min-max" (inclusive) and "min+" (open-ended).
func (c *Catalog) Filter(search, category, priceBand string) []models.MenuItem {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []models.MenuItem
	for _, it := range c.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Name), search) &&
			!strings.Contains(strings.ToLower(it.Description), search) {
			continue
		}
		if category != "" && category != "all" && it.Category != category {
			continue
		}
		if !priceInBand(it.Price, priceBand) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func priceInBand(price float64, band string) bool {
	if band == "" || band == "all" {
		return true
	}
	if min, ok := strings.CutSuffix(band, "+"); ok {
		lo, err := strconv.ParseFloat(min, 64)
		if err != nil {
			return true
		}
		return price >= lo
	}
	parts := strings.SplitN(band, "-", 2)
	if len(parts) != 2 {
		return true
	}
	lo, err1 := strconv.ParseFloat(parts[0], 64)
	hi, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return true
	}
	return price >= lo && price <= hi
}
