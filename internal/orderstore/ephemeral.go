package orderstore

import (
	"context"
	"sync"

	"github.com/crumbco/foodexpress/internal/models"
)

// Ephemeral is the session-only fallback used when Open fails: orders live in
// memory and are lost on restart. It honors the same contract as SQLStore.
type Ephemeral struct {
	mu     sync.Mutex
	nextID uint
	orders []models.Order
}

func NewEphemeral() *Ephemeral {
	return &Ephemeral{nextID: 1}
}

func (e *Ephemeral) Add(_ context.Context, order *models.Order) (uint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order.ID = e.nextID
	e.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	e.orders = append(e.orders, *order)
	return order.ID, nil
}

func (e *Ephemeral) GetAll(_ context.Context) ([]models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Order, len(e.orders))
	copy(out, e.orders)
	return out, nil
}

func (e *Ephemeral) Search(ctx context.Context, query string) ([]models.Order, error) {
	orders, err := e.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterOrders(orders, query), nil
}
