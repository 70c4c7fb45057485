// Package admin is the read-only administrative view over stored orders:
// listing, searching and export. It never writes to the store.
package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/crumbco/foodexpress/internal/models"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

var ErrNotFound = errors.New("order not found")

type Service struct {
	Store orderstore.Store
}

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Store.GetAll(ctx)
}

// SearchOrders treats a blank query as "no filter" and falls back to the full
// listing; otherwise it delegates to the store's substring search.
func (s *Service) SearchOrders(ctx context.Context, query string) ([]models.Order, error) {
	if strings.TrimSpace(query) == "" {
		return s.ListOrders(ctx)
	}
	return s.Store.Search(ctx, query)
}

// FindOrder resolves a single order by its store-assigned id, backing the
// receipt view in the dashboard.
func (s *Service) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	orders, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}
