package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
)

// AlertHandler eventos de stock de la plataforma de comercio y resumen bajo demanda.
type AlertHandler struct {
	uc *stock.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *stock.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Event godoc
// @Summary      Recibir evento de stock bajo o agotado
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEventRequest  true  "Evento"
// @Success      200   {object}  dto.StockEventResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/stock/events [post]
func (h *AlertHandler) Event(c *fiber.Ctx) error {
	var in dto.StockEventRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.HandleEvent(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Digest godoc
// @Summary      Enviar ahora el resumen de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DigestResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/digest [post]
func (h *AlertHandler) Digest(c *fiber.Ctx) error {
	out, err := h.uc.Digest(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
