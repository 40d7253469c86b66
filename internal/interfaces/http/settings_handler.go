package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
)

// SettingsHandler lectura y actualización de umbrales (protegido).
type SettingsHandler struct {
	uc *stock.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *stock.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Umbrales de stock efectivos
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings/thresholds [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.UserContext()))
}

// Update godoc
// @Summary      Actualizar umbrales de stock
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateThresholdsRequest  true  "Umbrales"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/settings/thresholds [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThresholdsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
