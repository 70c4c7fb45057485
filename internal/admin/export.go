package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"

	"github.com/crumbco/foodexpress/internal/models"
)

var exportColumns = []string{
	"Order ID", "Customer Name", "Email", "Address", "Items",
	"Subtotal", "Tax", "Total", "Date",
}

// ExportCSV renders orders as CSV text. Text fields are quoted; the monetary
// columns stay bare, matching the layout the dashboard download has always
// produced.
func ExportCSV(orders []models.Order) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportColumns, ","))
	b.WriteByte('\n')

	for _, o := range orders {
		row := []string{
			csvQuote(strconv.FormatUint(uint64(o.ID), 10)),
			csvQuote(o.CustomerName),
			csvQuote(o.Email),
			csvQuote(o.Address),
			csvQuote(itemsCell(o.Items)),
			o.Subtotal,
			o.Tax,
			o.Total,
			csvQuote(o.Date),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportXLSX renders orders as an Excel workbook with the same columns as the
// CSV export.
func ExportXLSX(orders []models.Order) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportColumns {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(int(o.ID))
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.Email)
		row.AddCell().SetValue(o.Address)
		row.AddCell().SetValue(itemsCell(o.Items))
		row.AddCell().SetValue(o.Subtotal)
		row.AddCell().SetValue(o.Tax)
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(o.Date)
	}
	return file, nil
}

// itemsCell flattens order lines into a single "2x Cake Pop ($20); ..." cell.
func itemsCell(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		price := strconv.FormatFloat(it.Price, 'f', -1, 64)
		parts = append(parts, fmt.Sprintf("%dx %s ($%s)", it.Quantity, it.Name, price))
	}
	return strings.Join(parts, "; ")
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
