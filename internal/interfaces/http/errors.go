package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/stock"
	"github.com/jhoicas/stock-manager/internal/domain"
)

// writeError traduce errores de aplicación a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verr *stock.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code:    "VALIDATION",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNoRecipients):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NO_RECIPIENTS", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador global de fiber: rutas inexistentes, métodos no permitidos y panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	apiCode := "INTERNAL"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		switch code {
		case fiber.StatusNotFound:
			apiCode = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			apiCode = "METHOD_NOT_ALLOWED"
		case fiber.StatusRequestEntityTooLarge:
			apiCode = "BODY_TOO_LARGE"
		default:
			if code < fiber.StatusInternalServerError {
				apiCode = "BAD_REQUEST"
			}
		}
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: apiCode, Message: err.Error()})
}
