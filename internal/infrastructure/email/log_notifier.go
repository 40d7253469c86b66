package email

import (
	"context"

	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier registra las alertas en el log. Se usa cuando no hay SMTP configurado.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notifier")}
}

func (n *LogNotifier) NotifyStock(_ context.Context, a ports.StockAlert) error {
	n.log.Warn().
		Str("alert_id", a.ID).
		Str("product_id", a.ProductID).
		Str("name", a.Name).
		Str("status", a.Status).
		Int("quantity", a.Quantity).
		Msg("alerta de stock")
	return nil
}

func (n *LogNotifier) NotifyDigest(_ context.Context, d ports.StockDigest) error {
	ev := n.log.Warn().Int("low", d.LowCount).Int("out", d.OutCount).Int("alerts", len(d.Alerts))
	names := make([]string, 0, len(d.Alerts))
	for _, a := range d.Alerts {
		names = append(names, a.Name)
	}
	ev.Strs("products", names).Msg("resumen de stock")
	return nil
}
