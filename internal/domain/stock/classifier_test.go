package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var defaults = entity.Thresholds{Low: 5, Full: 50}

func tracked(id string, qty int, price string) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          "Producto " + id,
		UnitPrice:     decimal.RequireFromString(price),
		ManageStock:   true,
		StockQuantity: qty,
	}
}

func untracked(id string, qty int) *entity.Product {
	p := tracked(id, qty, "1")
	p.ManageStock = false
	return p
}

func ids(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

// catálogo mixto usado en varios tests: incluye negativos, bordes y no rastreados.
func mixedCatalog() []*entity.Product {
	return []*entity.Product{
		tracked("a", 0, "10"),
		tracked("b", -3, "2.5"),
		untracked("c", 2),
		tracked("d", 4, "1.10"),
		tracked("e", 5, "3"),
		untracked("f", 100),
		tracked("g", 49, "0"),
		tracked("h", 50, "7.25"),
		tracked("i", 1, "9.99"),
		tracked("j", 120, "0.5"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_TablaDeReferencia(t *testing.T) {
	cases := []struct {
		qty  int
		want stock.Status
	}{
		{0, stock.StatusOut},
		{-3, stock.StatusOut},
		{4, stock.StatusLow},
		{5, stock.StatusNormal},
		{49, stock.StatusNormal},
		{50, stock.StatusFull},
		{1, stock.StatusLow},
		{1000, stock.StatusFull},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.Classify(tc.qty, defaults), "quantity=%d", tc.qty)
	}
}

func TestClassify_RamasExclusivasYExhaustivas(t *testing.T) {
	thresholds := []entity.Thresholds{{Low: 5, Full: 50}, {Low: 1, Full: 2}, {Low: 10, Full: 11}, {Low: -2, Full: 3}}
	for _, th := range thresholds {
		for q := -20; q <= 80; q++ {
			got := stock.Classify(q, th)
			var want stock.Status
			switch {
			case q <= 0:
				want = stock.StatusOut
			case q < th.Low:
				want = stock.StatusLow
			case q >= th.Full:
				want = stock.StatusFull
			default:
				want = stock.StatusNormal
			}
			require.Equal(t, want, got, "q=%d thresholds=%+v", q, th)
		}
	}
}

// Con Low >= Full se conserva el orden literal: Low gana sobre Full.
func TestClassify_UmbralesInvertidos_RespetaOrdenLiteral(t *testing.T) {
	th := entity.Thresholds{Low: 50, Full: 5}
	assert.Equal(t, stock.StatusLow, stock.Classify(10, th))
	assert.Equal(t, stock.StatusLow, stock.Classify(49, th))
	assert.Equal(t, stock.StatusFull, stock.Classify(50, th))
	assert.Equal(t, stock.StatusOut, stock.Classify(0, th))
}

func TestIsAlerting(t *testing.T) {
	assert.True(t, stock.IsAlerting(stock.StatusLow))
	assert.True(t, stock.IsAlerting(stock.StatusOut))
	assert.False(t, stock.IsAlerting(stock.StatusNormal))
	assert.False(t, stock.IsAlerting(stock.StatusFull))
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, stock.FilterLow, stock.ParseFilter("low"))
	assert.Equal(t, stock.FilterFull, stock.ParseFilter(" FULL "))
	assert.Equal(t, stock.FilterOut, stock.ParseFilter("Out"))
	assert.Equal(t, stock.FilterAll, stock.ParseFilter("all"))
	assert.Equal(t, stock.FilterAll, stock.ParseFilter(""))
	assert.Equal(t, stock.FilterAll, stock.ParseFilter("desconocido"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterProducts_AllDevuelveRastreadosEnOrden(t *testing.T) {
	got := stock.FilterProducts(mixedCatalog(), stock.FilterAll, defaults)
	assert.Equal(t, []string{"a", "b", "d", "e", "g", "h", "i", "j"}, ids(got))
}

func TestFilterProducts_LowExcluyeAgotados(t *testing.T) {
	got := stock.FilterProducts(mixedCatalog(), stock.FilterLow, defaults)
	assert.Equal(t, []string{"d", "i"}, ids(got))
	for _, p := range got {
		assert.Greater(t, p.StockQuantity, 0, "low nunca debe incluir agotados")
	}
}

func TestFilterProducts_FullYOut(t *testing.T) {
	assert.Equal(t, []string{"h", "j"}, ids(stock.FilterProducts(mixedCatalog(), stock.FilterFull, defaults)))
	assert.Equal(t, []string{"a", "b"}, ids(stock.FilterProducts(mixedCatalog(), stock.FilterOut, defaults)))
}

func TestFilterProducts_NoRastreadosSiempreExcluidos(t *testing.T) {
	catalog := []*entity.Product{untracked("x", 0), untracked("y", 3), untracked("z", 500)}
	for _, f := range []stock.Filter{stock.FilterAll, stock.FilterLow, stock.FilterFull, stock.FilterOut} {
		got := stock.FilterProducts(catalog, f, defaults)
		require.NotNil(t, got)
		assert.Empty(t, got, "filtro %s", f)
	}
}

func TestFilterProducts_CatalogoVacio(t *testing.T) {
	got := stock.FilterProducts(nil, stock.FilterAll, defaults)
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize / ComputeStockValue
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_CubetasSumanRastreados(t *testing.T) {
	catalog := mixedCatalog()
	s := stock.Summarize(catalog, defaults.Low)

	assert.Equal(t, 2, s.Out)
	assert.Equal(t, 2, s.Low)
	assert.Equal(t, 4, s.NormalOrFull)

	trackedCount := 0
	for _, p := range catalog {
		if p.ManageStock {
			trackedCount++
		}
	}
	assert.Equal(t, trackedCount, s.Low+s.Out+s.NormalOrFull)
	assert.Equal(t, trackedCount, s.Tracked())
}

func TestComputeStockValue_Vacio(t *testing.T) {
	v := stock.ComputeStockValue([]*entity.Product{untracked("x", 10)})
	assert.Equal(t, 0, v.TotalQuantity)
	assert.True(t, v.TotalValue.IsZero())
}

func TestComputeStockValue_EjemploDeReferencia(t *testing.T) {
	v := stock.ComputeStockValue([]*entity.Product{tracked("a", 2, "10"), tracked("b", 3, "5")})
	assert.Equal(t, 5, v.TotalQuantity)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(35)), "total=%s", v.TotalValue)
}

func TestComputeStockValue_PrecioFraccionalSinRedondeo(t *testing.T) {
	v := stock.ComputeStockValue([]*entity.Product{tracked("a", 3, "1.333"), untracked("b", 9)})
	assert.Equal(t, 3, v.TotalQuantity)
	assert.Equal(t, "3.999", v.TotalValue.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestOperaciones_Idempotentes(t *testing.T) {
	catalog := mixedCatalog()
	for _, f := range []stock.Filter{stock.FilterAll, stock.FilterLow, stock.FilterFull, stock.FilterOut} {
		assert.Equal(t, ids(stock.FilterProducts(catalog, f, defaults)), ids(stock.FilterProducts(catalog, f, defaults)))
	}
	assert.Equal(t, stock.Summarize(catalog, 5), stock.Summarize(catalog, 5))

	v1, v2 := stock.ComputeStockValue(catalog), stock.ComputeStockValue(catalog)
	assert.Equal(t, v1.TotalQuantity, v2.TotalQuantity)
	assert.True(t, v1.TotalValue.Equal(v2.TotalValue))
	assert.Equal(t, mixedCatalog(), catalog, "las operaciones no deben mutar la entrada")
}
