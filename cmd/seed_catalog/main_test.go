package main

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

func TestDecodeInput_Windows1252(t *testing.T) {
	// "Añil" en Windows-1252: ñ = 0xF1
	raw := []byte("sku,name,price,manage_stock,quantity\nA1,A\xf1il,1,yes,2\n")

	r, charset, err := decodeInput(raw)
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", charset)

	got, _ := io.ReadAll(r)
	assert.Contains(t, string(got), "Añil")
}

func TestDecodeInput_UTF8(t *testing.T) {
	_, charset, err := decodeInput([]byte("sku,name\nA1,Añil\n"))
	require.NoError(t, err)
	assert.Equal(t, "utf-8", charset)
}

func TestWriteSeed(t *testing.T) {
	var b strings.Builder
	err := writeSeed(&b, "catalogo.csv", []*entity.Product{
		{ID: "id-1", SKU: "A1", Name: "D'Artagnan", UnitPrice: decimal.RequireFromString("2.5"), ManageStock: true, StockQuantity: 4, Status: entity.ProductStatusPublish},
	})
	require.NoError(t, err)

	sql := b.String()
	assert.Contains(t, sql, "('id-1', 'A1', 'D''Artagnan', 2.5, true, 4, 'publish')\nON CONFLICT (sku) DO NOTHING;")
	assert.NotContains(t, sql, "DO UPDATE", "el seed no debe pisar el catálogo importado")
}
