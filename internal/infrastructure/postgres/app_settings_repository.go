package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

var _ repository.AppSettingsRepository = (*AppSettingsRepo)(nil)

// AppSettingsRepo settings JSONB de la aplicación.
type AppSettingsRepo struct {
	q Querier
}

func NewAppSettingsRepository(q Querier) *AppSettingsRepo {
	return &AppSettingsRepo{q: q}
}

// Get primera fila por id; (nil, nil) si la tabla está vacía.
func (r *AppSettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	var s entity.AppSettings
	err := r.q.QueryRow(ctx, `SELECT id, settings, updated_at FROM app_settings ORDER BY id LIMIT 1`).
		Scan(&s.ID, &s.Settings, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app settings: %w", err)
	}
	return &s, nil
}

// Replace sustituye el objeto settings completo de la fila id.
func (r *AppSettingsRepo) Replace(ctx context.Context, id int64, settings map[string]any) error {
	cmd, err := r.q.Exec(ctx, `UPDATE app_settings SET settings = $2, updated_at = now() WHERE id = $1`, id, settings)
	if err != nil {
		return fmt.Errorf("update app settings: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
