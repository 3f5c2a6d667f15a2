package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta el movimiento; created_at lo asigna el servidor.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, quantity_change, reason, type, balance)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, m.ProductID, m.QuantityChange, m.Reason, m.Type, m.Balance).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct movimientos de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity_change, reason, type, balance, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.QuantityChange, &m.Reason, &m.Type, &m.Balance, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListWithProduct todos los movimientos con nombre y precio del producto, más recientes primero.
func (r *StockMovementRepo) ListWithProduct(ctx context.Context) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity_change, m.reason, m.type, m.balance, m.created_at,
		       p.name, p.price
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock movements with product: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.QuantityChange, &m.Reason, &m.Type, &m.Balance, &m.CreatedAt,
			&m.ProductName, &m.ProductPrice,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
