package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func newStockUseCase(t *testing.T, reports *fakeReports) (*stock.StockUseCase, *memory.CatalogRepository, *stock.SettingsUseCase) {
	t.Helper()
	catalog := memory.NewCatalogRepository(referenceCatalog()...)
	settings := stock.NewSettingsUseCase(memory.NewSettingsStore(), defaults, logger.Nop())
	if reports == nil {
		return stock.NewStockUseCase(catalog, settings, nil), catalog, settings
	}
	return stock.NewStockUseCase(catalog, settings, reports), catalog, settings
}

func names(rows []dto.StockRowDTO) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestStockUseCase_ListPorFiltro(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)
	ctx := context.Background()

	cases := []struct {
		filter string
		want   []string
	}{
		{"all", []string{"Agotado", "Bajo", "Normal", "Lleno"}},
		{"low", []string{"Bajo"}},
		{"out", []string{"Agotado"}},
		{"full", []string{"Lleno"}},
		{"", []string{"Agotado", "Bajo", "Normal", "Lleno"}},
		{"desconocido", []string{"Agotado", "Bajo", "Normal", "Lleno"}},
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			resp, err := uc.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(resp.Items))
			assert.Equal(t, len(tc.want), resp.Total)
		})
	}
}

func TestStockUseCase_ListClasesDeFila(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)

	resp, err := uc.List(context.Background(), "all")
	require.NoError(t, err)
	classes := []string{}
	for _, r := range resp.Items {
		classes = append(classes, r.Class)
	}
	assert.Equal(t, []string{"stock-out", "stock-low", "", "stock-full"}, classes)
	assert.Equal(t, "normal", resp.Items[2].Status)
}

func TestStockUseCase_UmbralesActualizadosSeAplicanEnLaSiguienteLlamada(t *testing.T) {
	uc, _, settings := newStockUseCase(t, nil)
	ctx := context.Background()

	_, err := settings.Update(ctx, dto.UpdateThresholdsRequest{Low: intPtr(25), Full: intPtr(60)})
	require.NoError(t, err)

	resp, err := uc.List(ctx, "low")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bajo", "Normal"}, names(resp.Items))
	assert.Equal(t, 25, resp.Thresholds.Low)
}

func TestStockUseCase_Summary(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)

	s, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.LowCount)
	assert.Equal(t, 1, s.OutCount)
	assert.Equal(t, 2, s.NormalOrFullCount)
	assert.Equal(t, 4, s.Tracked)
}

func TestStockUseCase_Value(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)

	v, err := uc.Value(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 103, v.TotalQuantity)
	// 0*10 + 3*2.5 + 20*1 + 80*0.5
	assert.Equal(t, "67.5", v.TotalValue.String())
}

func TestStockUseCase_ExportYREST(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)
	ctx := context.Background()

	rows, err := uc.ExportRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Bajo", rows[1].Name)
	assert.Equal(t, "7.5", rows[1].Value.String())

	items, err := uc.RESTStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.RESTStockItem{Name: "Lleno", Stock: 80}, items[3])
}

func TestStockUseCase_CatalogoVacio(t *testing.T) {
	settings := stock.NewSettingsUseCase(memory.NewSettingsStore(), defaults, logger.Nop())
	uc := stock.NewStockUseCase(memory.NewCatalogRepository(), settings, nil)
	ctx := context.Background()

	items, err := uc.RESTStock(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	v, err := uc.Value(ctx)
	require.NoError(t, err)
	assert.Zero(t, v.TotalQuantity)
	assert.True(t, v.TotalValue.IsZero())
}

func TestStockUseCase_ErrorDeCatalogo(t *testing.T) {
	uc, catalog, _ := newStockUseCase(t, nil)
	catalog.FailWith(errors.New("caído"))

	_, err := uc.List(context.Background(), "all")
	assert.Error(t, err)
}

func TestStockUseCase_Report(t *testing.T) {
	reports := &fakeReports{}
	uc, _, _ := newStockUseCase(t, reports)

	out, err := uc.Report(context.Background(), "out")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(out))
	assert.Equal(t, "out", reports.got.Filter)
	assert.Len(t, reports.got.Rows, 1)
	assert.Equal(t, 4, reports.got.Summary.Tracked)
}

func TestStockUseCase_ReportSinGenerador(t *testing.T) {
	uc, _, _ := newStockUseCase(t, nil)

	_, err := uc.Report(context.Background(), "all")
	assert.Error(t, err)
}
