package dto

import "github.com/shopspring/decimal"

// ImportRow fila del CSV de catálogo ya tipada. Quantity nil = ausente o no numérica.
type ImportRow struct {
	Line        int             `validate:"-"`
	SKU         string          `validate:"required,max=100"`
	Name        string          `validate:"required,max=200"`
	Price       decimal.Decimal `validate:"-"`
	ManageStock bool            `validate:"-"`
	Quantity    *int            `validate:"required_if=ManageStock true"`
}

// ImportRowError error de una fila del CSV.
type ImportRowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult respuesta de POST /api/catalog/import.
type ImportResult struct {
	Imported int              `json:"imported"`
	Errors   []ImportRowError `json:"errors"`
}
