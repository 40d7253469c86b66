// Package stock contiene las reglas de clasificación de stock (servicio de dominio puro).
//
// Es la única fuente de verdad para decidir si un producto está agotado, bajo,
// normal o lleno: listados, resúmenes, exportaciones y notificadores la consultan.
package stock

import (
	"strings"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Status categoría de stock derivada (nunca se persiste).
type Status string

const (
	StatusOut    Status = "out"
	StatusLow    Status = "low"
	StatusNormal Status = "normal"
	StatusFull   Status = "full"
)

// Filter selector de subconjunto del catálogo rastreado.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterLow  Filter = "low"
	FilterFull Filter = "full"
	FilterOut  Filter = "out"
)

// Summary conteo por cubetas de los productos rastreados.
type Summary struct {
	Low          int
	Out          int
	NormalOrFull int
}

// Tracked total de productos rastreados contados en el resumen.
func (s Summary) Tracked() int { return s.Low + s.Out + s.NormalOrFull }

// Value totales de cantidad y valor del stock rastreado.
type Value struct {
	TotalQuantity int
	TotalValue    decimal.Decimal
}

// Classify clasifica una cantidad. Orden de evaluación: Out, Low, Full; el resto es Normal.
// Si t.Low >= t.Full se respeta el mismo orden literal.
func Classify(quantity int, t entity.Thresholds) Status {
	switch {
	case quantity <= 0:
		return StatusOut
	case quantity < t.Low:
		return StatusLow
	case quantity >= t.Full:
		return StatusFull
	default:
		return StatusNormal
	}
}

// IsAlerting indica si el estado debe disparar una notificación (Low u Out).
func IsAlerting(s Status) bool {
	return s == StatusLow || s == StatusOut
}

// ParseFilter interpreta el parámetro de filtro. Vacío o desconocido => FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterLow:
		return FilterLow
	case FilterFull:
		return FilterFull
	case FilterOut:
		return FilterOut
	default:
		return FilterAll
	}
}

// FilterProducts devuelve los productos rastreados que cumplen el filtro, en el orden del catálogo.
// Low excluye explícitamente los agotados (q <= 0).
func FilterProducts(products []*entity.Product, f Filter, t entity.Thresholds) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p == nil || !p.ManageStock {
			continue
		}
		if matches(p.StockQuantity, f, t) {
			out = append(out, p)
		}
	}
	return out
}

func matches(q int, f Filter, t entity.Thresholds) bool {
	switch f {
	case FilterLow:
		return q > 0 && q < t.Low
	case FilterFull:
		return q >= t.Full
	case FilterOut:
		return q <= 0
	default:
		return true
	}
}

// Summarize reparte los productos rastreados en tres cubetas: agotado, bajo y el resto.
func Summarize(products []*entity.Product, low int) Summary {
	var s Summary
	for _, p := range products {
		if p == nil || !p.ManageStock {
			continue
		}
		switch q := p.StockQuantity; {
		case q <= 0:
			s.Out++
		case q < low:
			s.Low++
		default:
			s.NormalOrFull++
		}
	}
	return s
}

// ComputeStockValue suma cantidad y cantidad*precio de los productos rastreados, sin redondear.
func ComputeStockValue(products []*entity.Product) Value {
	v := Value{TotalValue: decimal.Zero}
	for _, p := range products {
		if p == nil || !p.ManageStock {
			continue
		}
		v.TotalQuantity += p.StockQuantity
		v.TotalValue = v.TotalValue.Add(LineValue(p))
	}
	return v
}

// LineValue valor de stock de un producto (cantidad * precio unitario).
func LineValue(p *entity.Product) decimal.Decimal {
	return decimal.NewFromInt(int64(p.StockQuantity)).Mul(p.UnitPrice)
}
