package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura. Se construye con el pool: las tres
// consultas de GetStats corren en paralelo en conexiones distintas.
type StatsRepo struct {
	q Querier
}

func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

func (r *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// TotalInventoryValue SUM(price * stock); 0 sin productos.
func (r *StatsRepo) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var v decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(price * stock), 0) FROM products`).Scan(&v); err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return v, nil
}

// CountLowStock productos con stock < threshold.
func (r *StatsRepo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}
