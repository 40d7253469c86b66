package ports

import (
	"context"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/dto"
)

// StockReport datos de entrada para la representación imprimible del stock.
type StockReport struct {
	Title       string
	Filter      string
	Thresholds  dto.ThresholdsDTO
	Rows        []dto.StockRowDTO
	Value       dto.StockValueDTO
	Summary     dto.StockSummaryDTO
	GeneratedAt time.Time
}

// ReportGenerator define el puerto para generar el reporte de stock (PDF u otro formato binario).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}
