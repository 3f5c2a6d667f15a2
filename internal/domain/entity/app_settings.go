package entity

import "time"

// AppSettings fila de configuración de la aplicación (pares clave/valor), se reemplaza completa.
type AppSettings struct {
	ID        int64
	Settings  map[string]any
	UpdatedAt time.Time
}
