// Package email entrega las alertas de stock por correo (gomail) o, sin SMTP, al log.
package email

import "context"

// Email mensaje listo para enviar. HTMLBody es opcional.
type Email struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender transporte de correo.
type Sender interface {
	Send(ctx context.Context, e Email) error
}
