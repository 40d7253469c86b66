package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/infrastructure/export"
)

// StockHandler consultas de stock (protegido).
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RESTStock godoc
// @Summary      Stock de productos rastreados
// @Description  Devuelve [{name, stock}] para todos los productos con gestión de stock.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.RESTStockItem
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      429  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) RESTStock(c *fiber.Ctx) error {
	out, err := h.uc.RESTStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos por estado de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | low | full | out"  default(all)
// @Success      200     {object}  dto.StockListResponse
// @Router       /api/stock/products [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("filter"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de stock (bajos, agotados, normal o lleno)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryDTO
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Value godoc
// @Summary      Cantidad y valor total del stock rastreado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockValueDTO
// @Router       /api/stock/value [get]
func (h *StockHandler) Value(c *fiber.Ctx) error {
	out, err := h.uc.Value(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar stock a CSV (name, quantity, value)
// @Tags         stock
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  file
// @Router       /api/stock/export.csv [get]
func (h *StockHandler) ExportCSV(c *fiber.Ctx) error {
	rows, err := h.uc.ExportRows(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteStockCSV(&buf, rows); err != nil {
		return writeError(c, err)
	}
	c.Attachment(export.FileName)
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(buf.Bytes())
}

// ReportPDF godoc
// @Summary      Reporte de stock imprimible
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        filter  query  string  false  "all | low | full | out"  default(all)
// @Success      200     {file}  file
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) ReportPDF(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.UserContext(), c.Query("filter"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment("stock-report.pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}
