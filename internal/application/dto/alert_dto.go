package dto

// StockEventRequest evento externo de stock bajo/agotado emitido por la plataforma de comercio.
type StockEventRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

// StockEventResponse resultado de procesar un evento de stock.
type StockEventResponse struct {
	AlertID  string `json:"alert_id,omitempty"`
	Status   string `json:"status"`
	Notified bool   `json:"notified"`
}

// DigestResponse resultado de un envío de resumen.
type DigestResponse struct {
	Sent     bool `json:"sent"`
	LowCount int  `json:"low_count"`
	OutCount int  `json:"out_count"`
}
