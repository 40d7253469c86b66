package entity

// Valores por defecto de los umbrales de stock.
const (
	DefaultLowStockThreshold  = 5
	DefaultFullStockThreshold = 50
)

// Thresholds umbrales de clasificación de stock. Se pasan explícitamente a cada
// clasificación; normalmente Low < Full, pero no se exige.
type Thresholds struct {
	Low  int
	Full int
}

// DefaultThresholds devuelve los umbrales por defecto (5, 50).
func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLowStockThreshold, Full: DefaultFullStockThreshold}
}
