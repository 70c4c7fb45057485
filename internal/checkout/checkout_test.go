package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/crumbco/foodexpress/internal/backup"
	"github.com/crumbco/foodexpress/internal/cart"
	"github.com/crumbco/foodexpress/internal/catalog"
	"github.com/crumbco/foodexpress/internal/models"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

// failingStore rejects every insert the way a full disk would.
type failingStore struct{}

func (failingStore) Add(context.Context, *models.Order) (uint, error) {
	return 0, orderstore.ErrWrite
}
func (failingStore) GetAll(context.Context) ([]models.Order, error) { return nil, nil }
func (failingStore) Search(context.Context, string) ([]models.Order, error) {
	return nil, nil
}

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	cat := catalog.New([]models.MenuItem{
		{ID: 1, Name: "Cake Pop", Price: 20, Category: "Dessert"},
		{ID: 2, Name: "Margherita Pizza", Price: 12.5, Category: "Pizza"},
	})
	bak := backup.NewStore(filepath.Join(t.TempDir(), "backup.json"))
	return cart.New(cat, bak, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validForm() Form {
	return Form{
		FullName: "Alice Smith",
		Address:  "123 Food Street",
		Email:    "alice@example.com",
	}
}

func TestPlaceOrder(t *testing.T) {
	c := testCart(t)
	c.Add(1)
	c.Add(1)

	svc := &Service{Cart: c, Store: orderstore.NewEphemeral()}

	order, err := svc.PlaceOrder(context.Background(), validForm())
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, "Alice Smith", order.CustomerName)
	require.Equal(t, "40.00", order.Subtotal)
	require.Equal(t, "3.20", order.Tax)
	require.Equal(t, "43.20", order.Total)
	require.NotEmpty(t, order.Date)
	require.Len(t, order.Items, 1)
	require.Equal(t, 2, order.Items[0].Quantity)

	// Success clears the cart.
	require.Empty(t, c.Lines())
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
	}{
		{"empty name", func(f *Form) { f.FullName = "  " }},
		{"empty address", func(f *Form) { f.Address = "" }},
		{"empty email", func(f *Form) { f.Email = "" }},
		{"email without at", func(f *Form) { f.Email = "alice.example.com" }},
		{"email without tld", func(f *Form) { f.Email = "alice@example" }},
		{"email with spaces", func(f *Form) { f.Email = "al ice@example.com" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCart(t)
			c.Add(1)
			svc := &Service{Cart: c, Store: orderstore.NewEphemeral()}

			form := validForm()
			tt.mutate(&form)

			order, err := svc.PlaceOrder(context.Background(), form)
			require.Nil(t, order)
			require.True(t, errors.Is(err, ErrValidation))

			// The cart must be untouched and no order stored.
			require.Len(t, c.Lines(), 1)
			stored, _ := svc.Store.GetAll(context.Background())
			require.Empty(t, stored)
		})
	}
}

func TestEmptyCartRejected(t *testing.T) {
	svc := &Service{Cart: testCart(t), Store: orderstore.NewEphemeral()}

	order, err := svc.PlaceOrder(context.Background(), validForm())
	require.Nil(t, order)
	require.True(t, errors.Is(err, ErrValidation))
}

func TestStoreFailureKeepsCart(t *testing.T) {
	c := testCart(t)
	c.Add(1)
	c.Add(2)

	svc := &Service{Cart: c, Store: failingStore{}}

	order, err := svc.PlaceOrder(context.Background(), validForm())
	require.Nil(t, order)
	require.True(t, errors.Is(err, orderstore.ErrWrite))

	// Nothing was cleared; the customer can retry as-is.
	require.Len(t, c.Lines(), 2)
}

func TestPlaceOrderSnapshotConsistent(t *testing.T) {
	// Quantity changes racing the checkout must never produce an order whose
	// totals disagree with its own line items.
	for i := 0; i < 200; i++ {
		c := testCart(t)
		c.Add(1)
		svc := &Service{Cart: c, Store: orderstore.NewEphemeral()}

		done := make(chan struct{})
		go func() {
			defer close(done)
			for q := 2; q < 10; q++ {
				c.SetQuantity(1, q)
			}
		}()

		order, err := svc.PlaceOrder(context.Background(), validForm())
		<-done
		require.NoError(t, err)

		subtotal := decimal.Zero
		for _, it := range order.Items {
			price := decimal.NewFromFloat(it.Price)
			subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		tax := subtotal.Mul(decimal.NewFromFloat(0.08))

		require.Equal(t, subtotal.StringFixed(2), order.Subtotal)
		require.Equal(t, tax.StringFixed(2), order.Tax)
		require.Equal(t, subtotal.Add(tax).StringFixed(2), order.Total)
	}
}

// gatedStore parks every insert until the test releases it, so the test can
// schedule cart activity while an order is mid-flight.
type gatedStore struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Add(context.Context, *models.Order) (uint, error) {
	close(g.entered)
	<-g.release
	return 1, nil
}
func (g *gatedStore) GetAll(context.Context) ([]models.Order, error) { return nil, nil }
func (g *gatedStore) Search(context.Context, string) ([]models.Order, error) {
	return nil, nil
}

func TestLineAddedDuringCheckoutSurvives(t *testing.T) {
	c := testCart(t)
	c.Add(1)

	store := &gatedStore{entered: make(chan struct{}), release: make(chan struct{})}
	svc := &Service{Cart: c, Store: store}

	added := make(chan struct{})
	go func() {
		<-store.entered
		go func() {
			c.Add(2)
			close(added)
		}()
		// Let the add reach the cart before the insert completes.
		time.Sleep(10 * time.Millisecond)
		close(store.release)
	}()

	order, err := svc.PlaceOrder(context.Background(), validForm())
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, 1, order.Items[0].ItemID)

	<-added

	// The add that raced the checkout belongs to the next cart, not to the
	// cleared one.
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].ID)
}

func TestFormFieldsTrimmed(t *testing.T) {
	c := testCart(t)
	c.Add(1)
	svc := &Service{Cart: c, Store: orderstore.NewEphemeral()}

	order, err := svc.PlaceOrder(context.Background(), Form{
		FullName: "  Alice Smith  ",
		Address:  " 123 Food Street ",
		Email:    " alice@example.com ",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", order.CustomerName)
	require.Equal(t, "123 Food Street", order.Address)
	require.Equal(t, "alice@example.com", order.Email)
}
