// Package pdf genera el reporte de stock imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtro      │  Fecha de generación         │
//	│  UMBRALES: bajo < N, lleno >= M                              │
//	│  RESUMEN: bajos / agotados / normal o lleno                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cantidad | Estado | Valor           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Cantidad total / Valor total                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorOut     = &props.Color{Red: 170, Green: 20, Blue: 20}
	colorLow     = &props.Color{Red: 200, Green: 120, Blue: 0}
	colorFull    = &props.Color{Red: 20, Green: 120, Blue: 40}
)

var filterLabels = map[string]string{
	"all":  "Todos los productos",
	"low":  "Stock bajo",
	"full": "Stock lleno",
	"out":  "Agotados",
}

var statusLabels = map[string]string{
	"out":    "Agotado",
	"low":    "Bajo",
	"normal": "Normal",
	"full":   "Lleno",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	author  string
	printer *message.Printer
}

// NewStockReportGenerator construye el generador. Los números se formatean según lang.
func NewStockReportGenerator(author string, lang language.Tag) *StockReportGenerator {
	return &StockReportGenerator{author: author, printer: message.NewPrinter(lang)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(ctx context.Context, r ports.StockReport) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(r.Thresholds, r.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.Rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay productos para este filtro.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	m.AddRows(g.tableDetailRows(r.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(r.Value))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StockReportGenerator) headerRow(r ports.StockReport) core.Row {
	label, ok := filterLabels[r.Filter]
	if !ok {
		label = filterLabels["all"]
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Filtro: "+label, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func (g *StockReportGenerator) summaryRow(t dto.ThresholdsDTO, s dto.StockSummaryDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(g.printer.Sprintf("Umbrales: bajo < %d   |   lleno >= %d", t.Low, t.Full), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
			text.New(g.printer.Sprintf("Bajos: %d   |   Agotados: %d   |   Normal o lleno: %d   |   Rastreados: %d",
				s.LowCount, s.OutCount, s.NormalOrFullCount, s.Tracked,
			), props.Text{Size: 8, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Estado", 2, align.Center),
		h("Valor", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows una fila por producto; el estado va coloreado.
func (g *StockReportGenerator) tableDetailRows(rows []dto.StockRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		value := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.printer.Sprintf("%d", r.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(statusLabels[r.Status], props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: statusColor(r.Status),
			})),
			col.New(2).Add(text.New(g.formatMoney(value), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func (g *StockReportGenerator) totalsRow(v dto.StockValueDTO) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
		})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(label("Cantidad total:", 1), label("Valor total:", 8)),
		col.New(3).Add(
			value(g.printer.Sprintf("%d", v.TotalQuantity), 1),
			value(g.formatMoney(v.TotalValue), 8),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case "out":
		return colorOut
	case "low":
		return colorLow
	case "full":
		return colorFull
	default:
		return colorGray
	}
}

// formatMoney formatea d con dos decimales y separador de miles del idioma del printer.
// La parte entera se formatea como entero para no perder precisión.
func (g *StockReportGenerator) formatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	whole, err := decimal.NewFromString(intPart)
	if err != nil {
		return "$" + fixed
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + g.printer.Sprintf("%d", whole.IntPart()) + g.decimalSeparator() + frac
}

func (g *StockReportGenerator) decimalSeparator() string {
	// "%.1f" de 1.5 devuelve "1,5" o "1.5" según el idioma
	s := g.printer.Sprintf("%.1f", 1.5)
	return s[1:2]
}
