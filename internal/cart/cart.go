// Package cart keeps the in-progress selection and its derived totals. The
// cart mirrors itself into the backup store after every mutation and restores
// from it once at construction, so a restart picks up where the user left off.
package cart

import (
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/crumbco/foodexpress/internal/backup"
	"github.com/crumbco/foodexpress/internal/catalog"
	"github.com/crumbco/foodexpress/internal/models"
)

var taxRate = decimal.NewFromFloat(0.08)

// Totals are the cart's derived monetary values, fixed to two decimal places.
type Totals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type Cart struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	backup  *backup.Store
	log     *slog.Logger
	lines   []models.CartLine

	// OnChange, when set, runs after every mutation so the view layer can
	// refresh. It runs with the cart lock held and must not call back into
	// the cart. Set it before the cart is shared.
	OnChange func()
}

// New builds a cart restored from the backup store. A missing or corrupt
// backup yields an empty cart; that is logged and never fatal.
func New(cat *catalog.Catalog, bak *backup.Store, log *slog.Logger) *Cart {
	c := &Cart{catalog: cat, backup: bak, log: log}

	var saved []models.CartLine
	found, err := bak.Get(backup.CartKey, &saved)
	if err != nil {
		log.Warn("cart backup unreadable, starting empty", "error", err)
		return c
	}
	if found {
		c.lines = saved
	}
	return c
}

// Add puts one unit of the given menu item into the cart. Unknown item ids
// are ignored. An existing line is incremented rather than duplicated.
func (c *Cart) Add(itemID int) {
	item, ok := c.catalog.ByID(itemID)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines[i].Quantity++
			c.mutated()
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Quantity:    1,
	})
	c.mutated()
}

// Remove drops the line for itemID, if any. The mirror write happens either
// way, so an id that was already gone still leaves a fresh backup behind.
func (c *Cart) Remove(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.mutated()
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line. Unknown item ids are ignored.
func (c *Cart) SetQuantity(itemID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines[i].Quantity = quantity
			c.mutated()
			return
		}
	}
}

// Clear empties the cart. Checkout calls this once after the order is safely
// stored.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.mutated()
}

// Lines returns a copy of the current lines in first-added order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linesLocked()
}

// Checkout runs submit with a consistent view of the lines and totals and,
// when submit succeeds, empties the cart before releasing the lock. Other
// mutations wait for the whole section, so a line added mid-checkout lands in
// the fresh cart instead of being wiped by the clear, and the snapshot submit
// sees can never mix quantities from two states. submit runs with the lock
// held and must not call back into the cart.
func (c *Cart) Checkout(submit func(lines []models.CartLine, totals Totals) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := submit(c.linesLocked(), c.totalsLocked()); err != nil {
		return err
	}
	c.lines = nil
	c.mutated()
	return nil
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals recomputes subtotal, tax and total from the current lines. Tax is a
// flat 8% of the subtotal.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalsLocked()
}

func (c *Cart) linesLocked() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) totalsLocked() Totals {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		price := decimal.NewFromFloat(l.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	return Totals{
		Subtotal: subtotal.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    total.StringFixed(2),
	}
}

func (c *Cart) removeLocked(itemID int) {
	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.mutated()
			return
		}
	}
}

// mutated mirrors the cart to the backup store and fires the change hook.
// Callers hold c.mu.
func (c *Cart) mutated() {
	snapshot := c.lines
	if snapshot == nil {
		snapshot = []models.CartLine{}
	}
	if err := c.backup.Set(backup.CartKey, snapshot); err != nil {
		c.log.Warn("cart backup write failed", "error", err)
	}
	if c.OnChange != nil {
		c.OnChange()
	}
}
