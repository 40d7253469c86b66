package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/ports"
	"github.com/jhoicas/stock-manager/internal/domain"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier implementa ports.Notifier enviando un correo a una lista fija de destinatarios.
type Notifier struct {
	sender     Sender
	recipients []string
	appName    string
}

// NewNotifier construye el notifier. Sin destinatarios, cada envío devuelve domain.ErrNoRecipients.
func NewNotifier(sender Sender, recipients []string, appName string) *Notifier {
	return &Notifier{sender: sender, recipients: recipients, appName: appName}
}

// NotifyStock envía una alerta individual (stock bajo o agotado).
func (n *Notifier) NotifyStock(ctx context.Context, a ports.StockAlert) error {
	if len(n.recipients) == 0 {
		return domain.ErrNoRecipients
	}
	subject := fmt.Sprintf("[%s] %s: %s (%d)", n.appName, statusLabel(a.Status), a.Name, a.Quantity)
	text := fmt.Sprintf(
		"Producto: %s (%s)\nEstado: %s\nCantidad: %d\nUmbrales: bajo < %d, lleno >= %d\nFecha: %s\n",
		a.Name, a.ProductID, statusLabel(a.Status), a.Quantity, a.Low, a.Full, a.At.Format(time.RFC3339),
	)
	return n.sender.Send(ctx, Email{To: n.recipients, Subject: subject, TextBody: text})
}

// NotifyDigest envía el resumen con todos los productos que requieren atención.
func (n *Notifier) NotifyDigest(ctx context.Context, d ports.StockDigest) error {
	if len(n.recipients) == 0 {
		return domain.ErrNoRecipients
	}
	subject := fmt.Sprintf("[%s] Resumen de stock: %d bajos, %d agotados", n.appName, d.LowCount, d.OutCount)

	var text, body strings.Builder
	fmt.Fprintf(&text, "Resumen del %s\n\n", d.At.Format("2006-01-02 15:04"))
	fmt.Fprintf(&text, "Bajo: %d\nAgotado: %d\nNormal o lleno: %d\n\n", d.LowCount, d.OutCount, d.NormalOrFullCount)
	body.WriteString("<table><tr><th>Producto</th><th>Cantidad</th><th>Estado</th></tr>")
	for _, a := range d.Alerts {
		fmt.Fprintf(&text, "- %s: %d (%s)\n", a.Name, a.Quantity, statusLabel(a.Status))
		fmt.Fprintf(&body, `<tr class="stock-%s"><td>%s</td><td>%d</td><td>%s</td></tr>`,
			a.Status, html.EscapeString(a.Name), a.Quantity, statusLabel(a.Status))
	}
	body.WriteString("</table>")

	return n.sender.Send(ctx, Email{
		To:       n.recipients,
		Subject:  subject,
		TextBody: text.String(),
		HTMLBody: body.String(),
	})
}

func statusLabel(status string) string {
	switch status {
	case "out":
		return "Agotado"
	case "low":
		return "Stock bajo"
	case "full":
		return "Stock lleno"
	default:
		return "Normal"
	}
}
