package usecase

import (
	"context"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

// SettingsUseCase lectura y reemplazo de la configuración de la aplicación (fila única).
type SettingsUseCase struct {
	repo repository.AppSettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.AppSettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la primera fila; domain.ErrNotFound si la tabla está vacía.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.AppSettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	settings := s.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return &dto.AppSettingsResponse{ID: s.ID, Settings: settings, UpdatedAt: s.UpdatedAt}, nil
}

// Replace sustituye el objeto completo de settings de la fila id.
func (uc *SettingsUseCase) Replace(ctx context.Context, id int64, settings map[string]any) error {
	if settings == nil {
		return domain.NewValidationError("settings must be a JSON object")
	}
	return uc.repo.Replace(ctx, id, settings)
}
