package inventory

import (
	"context"

	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// MovementMetrics contadores del ledger (pkg/metrics.Metrics lo implementa).
type MovementMetrics interface {
	IncMovement(movementType, outcome string)
}
