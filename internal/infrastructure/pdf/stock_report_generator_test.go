package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/ports"
)

func TestGenerateStockReport_DevuelvePDF(t *testing.T) {
	g := NewStockReportGenerator("stock-manager", language.Spanish)

	out, err := g.GenerateStockReport(context.Background(), ports.StockReport{
		Title:      "Reporte de stock",
		Filter:     "low",
		Thresholds: dto.ThresholdsDTO{Low: 5, Full: 50},
		Rows: []dto.StockRowDTO{
			{SKU: "A1", Name: "Tornillo", Quantity: 3, UnitPrice: decimal.RequireFromString("2.5"), Status: "low"},
		},
		Value:       dto.StockValueDTO{TotalQuantity: 3, TotalValue: decimal.RequireFromString("7.5")},
		Summary:     dto.StockSummaryDTO{LowCount: 1, Tracked: 1},
		GeneratedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStockReport_SinFilas(t *testing.T) {
	g := NewStockReportGenerator("stock-manager", language.Spanish)

	out, err := g.GenerateStockReport(context.Background(), ports.StockReport{Title: "Reporte", Filter: "out"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatMoney(t *testing.T) {
	es := NewStockReportGenerator("", language.Spanish)
	en := NewStockReportGenerator("", language.English)

	assert.Equal(t, "$1.234.567,50", es.formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "$1,234,567.50", en.formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-$3,00", es.formatMoney(decimal.NewFromInt(-3)))
	assert.Equal(t, "$0,00", es.formatMoney(decimal.Zero))
}
