package dto

// UpdateThresholdsRequest body para PUT /api/settings/thresholds.
type UpdateThresholdsRequest struct {
	Low  *int `json:"low_stock_threshold" validate:"required,min=0"`
	Full *int `json:"full_stock_threshold" validate:"required,min=0"`
}

// SettingsResponse umbrales efectivos y si provienen de valores por defecto.
type SettingsResponse struct {
	ThresholdsDTO
	Defaults bool   `json:"defaults"`
	Warning  string `json:"warning,omitempty"`
}
