package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crumbco/foodexpress/internal/models"
	"github.com/crumbco/foodexpress/internal/orderstore"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	store := orderstore.NewEphemeral()
	ctx := context.Background()

	orders := []*models.Order{
		{
			CustomerName: "Alice Smith", Email: "alice@example.com", Address: "123 Food Street",
			Items:    []models.OrderItem{{ItemID: 1, Name: "Cake Pop", Price: 20, Quantity: 2}},
			Subtotal: "40.00", Tax: "3.20", Total: "43.20", Date: "2026-09-01T10:00:00Z",
		},
		{
			CustomerName: "Bob Jones", Email: "bob@shop.example", Address: "9 High Road",
			Items: []models.OrderItem{
				{ItemID: 2, Name: "Margherita Pizza", Price: 12.5, Quantity: 1},
				{ItemID: 3, Name: "Fresh Lemonade", Price: 3.25, Quantity: 2},
			},
			Subtotal: "19.00", Tax: "1.52", Total: "20.52", Date: "2026-09-01T11:30:00Z",
		},
	}
	for _, o := range orders {
		_, err := store.Add(ctx, o)
		require.NoError(t, err)
	}
	return &Service{Store: store}
}

func TestSearchOrdersBlankQueryListsAll(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	all, err := svc.ListOrders(ctx)
	require.NoError(t, err)

	for _, q := range []string{"", "   "} {
		got, err := svc.SearchOrders(ctx, q)
		require.NoError(t, err)
		require.Equal(t, all, got)
	}
}

func TestSearchOrdersMatchesNameOrEmail(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	got, err := svc.SearchOrders(ctx, "BOB")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Bob Jones", got[0].CustomerName)

	got, err = svc.SearchOrders(ctx, "alice@")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Alice Smith", got[0].CustomerName)
}

func TestFindOrder(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	order, err := svc.FindOrder(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Bob Jones", order.CustomerName)

	_, err = svc.FindOrder(ctx, 99)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestExportCSV(t *testing.T) {
	svc := seededService(t)
	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)

	got := ExportCSV(orders)
	want := "Order ID,Customer Name,Email,Address,Items,Subtotal,Tax,Total,Date\n" +
		`"1","Alice Smith","alice@example.com","123 Food Street","2x Cake Pop ($20)",40.00,3.20,43.20,"2026-09-01T10:00:00Z"` + "\n" +
		`"2","Bob Jones","bob@shop.example","9 High Road","1x Margherita Pizza ($12.5); 2x Fresh Lemonade ($3.25)",19.00,1.52,20.52,"2026-09-01T11:30:00Z"` + "\n"
	require.Equal(t, want, got)
}

func TestExportCSVEscapesQuotes(t *testing.T) {
	orders := []models.Order{{
		ID: 1, CustomerName: `Joe "Big" Doe`, Email: "joe@example.com", Address: "1 Main St",
		Subtotal: "0.00", Tax: "0.00", Total: "0.00", Date: "2026-09-01T00:00:00Z",
	}}

	got := ExportCSV(orders)
	require.Contains(t, got, `"Joe ""Big"" Doe"`)
}

func TestExportCSVEmpty(t *testing.T) {
	got := ExportCSV(nil)
	require.Equal(t, "Order ID,Customer Name,Email,Address,Items,Subtotal,Tax,Total,Date\n", got)
}

func TestExportXLSX(t *testing.T) {
	svc := seededService(t)
	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)

	file, err := ExportXLSX(orders)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Equal(t, "Orders", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	require.Equal(t, "Order ID", sheet.Rows[0].Cells[0].String())
	require.Equal(t, "Alice Smith", sheet.Rows[1].Cells[1].String())
	require.Equal(t, "20.52", sheet.Rows[2].Cells[7].String())
}
