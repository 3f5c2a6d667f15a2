package dto

import "time"

// AppSettingsResponse salida de GET /appsettings.
type AppSettingsResponse struct {
	ID        int64          `json:"id"`
	Settings  map[string]any `json:"settings"`
	UpdatedAt time.Time      `json:"updated_at"`
}
