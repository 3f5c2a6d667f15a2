package repository

import (
	"context"

	"github.com/jhoicas/inventory-manager/internal/domain/entity"
)

// AppSettingsRepository lectura y reemplazo completo de la configuración de la aplicación.
type AppSettingsRepository interface {
	// Get devuelve la primera fila (menor id) o (nil, nil) si la tabla está vacía.
	Get(ctx context.Context) (*entity.AppSettings, error)
	Replace(ctx context.Context, id int64, settings map[string]any) error
}
