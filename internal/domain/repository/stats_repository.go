package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas agregadas de solo lectura sobre products.
// Cada método es independiente para poder ejecutarse en paralelo.
type StatsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}
