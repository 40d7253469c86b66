package ports

import (
	"context"
	"time"
)

// StockAlert alerta de un producto en estado Low u Out, ya clasificada por el dominio.
type StockAlert struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int
	Status    string // low | out
	Low       int
	Full      int
	At        time.Time
}

// StockDigest resumen periódico con los productos que requieren atención.
type StockDigest struct {
	LowCount          int
	OutCount          int
	NormalOrFullCount int
	Alerts            []StockAlert
	At                time.Time
}

// Notifier define el puerto de salida para notificaciones de stock (email, log, webhooks).
// Los adaptadores no reclasifican: reciben alertas ya decididas por stock.Classify.
type Notifier interface {
	NotifyStock(ctx context.Context, alert StockAlert) error
	NotifyDigest(ctx context.Context, digest StockDigest) error
}
