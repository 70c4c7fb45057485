// Package checkout turns the live cart plus the customer's contact details
// into a persisted order. The cart is only cleared once the store has accepted
// the order; any failure leaves it exactly as it was.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/crumbco/foodexpress/internal/cart"
	"github.com/crumbco/foodexpress/internal/logging"
	"github.com/crumbco/foodexpress/internal/models"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

// ErrValidation marks a rejected checkout form. Wrapped errors carry the
// field-level reason.
var ErrValidation = errors.New("validation")

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is what the customer submits on the checkout page.
type Form struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

type Service struct {
	Cart  *cart.Cart
	Store orderstore.Store
}

// PlaceOrder validates the form, snapshots the cart into an order, persists it
// and clears the cart. The returned order carries the store-assigned id and
// feeds the receipt view.
func (s *Service) PlaceOrder(ctx context.Context, form Form) (*models.Order, error) {
	l := logging.FromContext(ctx).With("component", "checkout")

	name := strings.TrimSpace(form.FullName)
	address := strings.TrimSpace(form.Address)
	email := strings.TrimSpace(form.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("%w: email address is invalid", ErrValidation)
	}

	// Snapshot, persist and clear happen as one cart section: the stored
	// order's totals always match its own lines, and a concurrent add can
	// never be swallowed by the post-checkout clear.
	var order *models.Order
	err := s.Cart.Checkout(func(lines []models.CartLine, totals cart.Totals) error {
		if len(lines) == 0 {
			return fmt.Errorf("%w: cart is empty", ErrValidation)
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				ItemID:   line.ID,
				Name:     line.Name,
				Price:    line.Price,
				Quantity: line.Quantity,
			})
		}

		order = &models.Order{
			CustomerName: name,
			Email:        email,
			Address:      address,
			Items:        items,
			Subtotal:     totals.Subtotal,
			Tax:          totals.Tax,
			Total:        totals.Total,
			Date:         time.Now().UTC().Format(time.RFC3339),
		}

		id, err := s.Store.Add(ctx, order)
		if err != nil {
			return err
		}
		order.ID = id
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrValidation) {
			l.Error("order persist failed", "error", err)
		}
		return nil, err
	}

	l.Info("order placed", "order_id", order.ID, "total", order.Total)
	return order, nil
}
