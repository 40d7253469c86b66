package stock

import (
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/pkg/validation"
)

// ValidationError error de entrada con detalle por campo; errors.Is(err, domain.ErrInvalidInput) es true.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string { return domain.ErrInvalidInput.Error() }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }
