// Package stock contiene los casos de uso de stock: listados filtrados, resumen,
// valorización, exportación, reporte imprimible, ingesta de catálogo y alertas.
//
// Cada llamada hace una pasada independiente: catálogo y umbrales se leen frescos
// y la clasificación se delega siempre en internal/domain/stock.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	domstock "github.com/jhoicas/stock-manager/internal/domain/stock"
)

// StockUseCase consultas de stock sobre el catálogo rastreado.
type StockUseCase struct {
	catalog  repository.CatalogProvider
	settings *SettingsUseCase
	reports  ports.ReportGenerator
	now      func() time.Time
}

// NewStockUseCase construye el caso de uso. reports puede ser nil si no se expone el PDF.
func NewStockUseCase(
	catalog repository.CatalogProvider,
	settings *SettingsUseCase,
	reports ports.ReportGenerator,
) *StockUseCase {
	return &StockUseCase{
		catalog:  catalog,
		settings: settings,
		reports:  reports,
		now:      time.Now,
	}
}

// snapshot lee catálogo y umbrales en paralelo para una única pasada.
func (uc *StockUseCase) snapshot(ctx context.Context) ([]*entity.Product, entity.Thresholds, error) {
	type catalogResult struct {
		products []*entity.Product
		err      error
	}
	catalogCh := make(chan catalogResult, 1)
	thresholdsCh := make(chan entity.Thresholds, 1)

	go func() {
		products, err := uc.catalog.ListProducts(ctx)
		catalogCh <- catalogResult{products, err}
	}()
	go func() {
		t, _ := uc.settings.Thresholds(ctx)
		thresholdsCh <- t
	}()

	cat := <-catalogCh
	t := <-thresholdsCh
	if cat.err != nil {
		return nil, t, fmt.Errorf("stock: catálogo: %w", cat.err)
	}
	return cat.products, t, nil
}

// List devuelve las filas del filtro indicado (all|low|full|out; desconocido = all).
func (uc *StockUseCase) List(ctx context.Context, filter string) (*dto.StockListResponse, error) {
	products, t, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	f := domstock.ParseFilter(filter)
	rows := toRows(domstock.FilterProducts(products, f, t), t)
	return &dto.StockListResponse{
		Filter:     string(f),
		Thresholds: toThresholdsDTO(t),
		Total:      len(rows),
		Items:      rows,
	}, nil
}

// Summary devuelve el conteo por cubetas (widget de resumen).
func (uc *StockUseCase) Summary(ctx context.Context) (*dto.StockSummaryDTO, error) {
	products, t, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toSummaryDTO(domstock.Summarize(products, t.Low), t), nil
}

// Value devuelve cantidad total y valor total del stock rastreado.
func (uc *StockUseCase) Value(ctx context.Context) (*dto.StockValueDTO, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock: catálogo: %w", err)
	}
	v := domstock.ComputeStockValue(products)
	return &dto.StockValueDTO{TotalQuantity: v.TotalQuantity, TotalValue: v.TotalValue}, nil
}

// ExportRows devuelve las filas de exportación (name, quantity, value) de todos los rastreados.
func (uc *StockUseCase) ExportRows(ctx context.Context) ([]dto.ExportRow, error) {
	products, t, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	tracked := domstock.FilterProducts(products, domstock.FilterAll, t)
	rows := make([]dto.ExportRow, 0, len(tracked))
	for _, p := range tracked {
		rows = append(rows, dto.ExportRow{
			Name:     p.Name,
			Quantity: p.StockQuantity,
			Value:    domstock.LineValue(p),
		})
	}
	return rows, nil
}

// RESTStock devuelve [{name, stock}] para todos los productos rastreados.
func (uc *StockUseCase) RESTStock(ctx context.Context) ([]dto.RESTStockItem, error) {
	products, t, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	tracked := domstock.FilterProducts(products, domstock.FilterAll, t)
	items := make([]dto.RESTStockItem, 0, len(tracked))
	for _, p := range tracked {
		items = append(items, dto.RESTStockItem{Name: p.Name, Stock: p.StockQuantity})
	}
	return items, nil
}

// Report genera el reporte imprimible del filtro indicado.
func (uc *StockUseCase) Report(ctx context.Context, filter string) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("stock: generador de reportes no configurado")
	}
	products, t, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	f := domstock.ParseFilter(filter)
	selected := domstock.FilterProducts(products, f, t)
	v := domstock.ComputeStockValue(selected)

	return uc.reports.GenerateStockReport(ctx, ports.StockReport{
		Title:       "Reporte de stock",
		Filter:      string(f),
		Thresholds:  toThresholdsDTO(t),
		Rows:        toRows(selected, t),
		Value:       dto.StockValueDTO{TotalQuantity: v.TotalQuantity, TotalValue: v.TotalValue},
		Summary:     *toSummaryDTO(domstock.Summarize(products, t.Low), t),
		GeneratedAt: uc.now(),
	})
}

func toRows(products []*entity.Product, t entity.Thresholds) []dto.StockRowDTO {
	rows := make([]dto.StockRowDTO, 0, len(products))
	for _, p := range products {
		status := domstock.Classify(p.StockQuantity, t)
		rows = append(rows, dto.StockRowDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  p.StockQuantity,
			UnitPrice: p.UnitPrice,
			Status:    string(status),
			Class:     rowClass(status),
		})
	}
	return rows
}

// rowClass clase CSS de la fila; los productos normales no llevan clase.
func rowClass(s domstock.Status) string {
	switch s {
	case domstock.StatusOut:
		return "stock-out"
	case domstock.StatusLow:
		return "stock-low"
	case domstock.StatusFull:
		return "stock-full"
	default:
		return ""
	}
}

func toSummaryDTO(s domstock.Summary, t entity.Thresholds) *dto.StockSummaryDTO {
	return &dto.StockSummaryDTO{
		LowCount:          s.Low,
		OutCount:          s.Out,
		NormalOrFullCount: s.NormalOrFull,
		Tracked:           s.Tracked(),
		Thresholds:        toThresholdsDTO(t),
	}
}
