package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de publicación del catálogo.
const (
	ProductStatusPublish = "publish"
	ProductStatusDraft   = "draft"
)

// Product representa un producto del catálogo de la tienda (snapshot de solo lectura).
// ManageStock indica si la tienda gestiona stock para el producto; los que no lo hacen
// nunca entran en la clasificación.
type Product struct {
	ID            string
	SKU           string
	Name          string
	UnitPrice     decimal.Decimal // precio unitario (>= 0), sin redondeo
	ManageStock   bool
	StockQuantity int // puede ser negativo (sobreventa) -> se trata como agotado
	Status        string
	UpdatedAt     time.Time
}
