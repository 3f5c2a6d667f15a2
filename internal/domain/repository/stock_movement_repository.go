package repository

import (
	"context"

	"github.com/jhoicas/inventory-manager/internal/domain/entity"
)

// StockMovementRepository puerto del ledger. No hay update ni delete: los movimientos son inmutables.
type StockMovementRepository interface {
	// Create inserta el movimiento y completa ID y CreatedAt.
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct ordena por created_at DESC.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error)
	// ListWithProduct devuelve todos los movimientos con nombre y precio del producto, created_at DESC.
	ListWithProduct(ctx context.Context) ([]*entity.MovementWithProduct, error)
}
