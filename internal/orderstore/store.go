// Package orderstore owns durable storage of completed orders. The SQL store
// is append-only from the application's point of view: orders are inserted and
// read back, never updated or deleted.
package orderstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/crumbco/foodexpress/internal/models"
)

var (
	// ErrStoreUnavailable means the engine rejected the open request. Callers
	// degrade to a session-only store rather than failing the process.
	ErrStoreUnavailable = errors.New("order store unavailable")
	// ErrNotInitialized means an operation ran before Open succeeded.
	ErrNotInitialized = errors.New("order store not initialized")
	// ErrWrite means an insert was rejected. The caller surfaces it to the
	// user; writes are never retried automatically.
	ErrWrite = errors.New("order store write failed")
)

type Store interface {
	Add(ctx context.Context, order *models.Order) (uint, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Search(ctx context.Context, query string) ([]models.Order, error)
}

// SQLStore keeps orders in an embedded sqlite database.
type SQLStore struct {
	db *gorm.DB
}

// Open opens or creates the database at path and migrates the order schema.
func Open(path string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrStoreUnavailable, err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Add(ctx context.Context, order *models.Order) (uint, error) {
	if s == nil || s.db == nil {
		return 0, ErrNotInitialized
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return order.ID, nil
}

func (s *SQLStore) GetAll(ctx context.Context) ([]models.Order, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotInitialized
	}
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Search filters all orders by a case-insensitive substring match on customer
// name or email. There is no dedicated index scan; the order book is small by
// construction.
func (s *SQLStore) Search(ctx context.Context, query string) ([]models.Order, error) {
	orders, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterOrders(orders, query), nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func filterOrders(orders []models.Order, query string) []models.Order {
	q := strings.ToLower(query)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), q) ||
			strings.Contains(strings.ToLower(o.Email), q) {
			out = append(out, o)
		}
	}
	return out
}
