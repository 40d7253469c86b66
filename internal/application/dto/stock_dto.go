package dto

import "github.com/shopspring/decimal"

// ThresholdsDTO umbrales efectivos usados en una clasificación.
type ThresholdsDTO struct {
	Low  int `json:"low_stock_threshold"`
	Full int `json:"full_stock_threshold"`
}

// StockRowDTO fila del listado de stock (equivalente a la tabla del panel de administración).
type StockRowDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"` // out | low | normal | full
	Class     string          `json:"class"`  // stock-out | stock-low | stock-full | ""
}

// StockListResponse respuesta de GET /api/stock/products.
type StockListResponse struct {
	Filter     string        `json:"filter"`
	Thresholds ThresholdsDTO `json:"thresholds"`
	Total      int           `json:"total"`
	Items      []StockRowDTO `json:"items"`
}

// StockSummaryDTO widget de resumen: conteo de productos por cubeta.
type StockSummaryDTO struct {
	LowCount          int           `json:"low_count"`
	OutCount          int           `json:"out_count"`
	NormalOrFullCount int           `json:"normal_or_full_count"`
	Tracked           int           `json:"tracked"`
	Thresholds        ThresholdsDTO `json:"thresholds"`
}

// StockValueDTO totales de stock rastreado (sin redondeo).
type StockValueDTO struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// RESTStockItem elemento de GET /api/stock.
type RESTStockItem struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// ExportRow fila del CSV de exportación: name, quantity, value.
type ExportRow struct {
	Name     string
	Quantity int
	Value    decimal.Decimal
}
