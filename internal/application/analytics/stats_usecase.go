// Package analytics contiene los casos de uso de estadísticas agregadas del inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

// LowStockThreshold un producto con stock estrictamente menor cuenta como "bajo stock".
const LowStockThreshold = 10

// StatsMetrics observa la duración del cálculo (pkg/metrics.Metrics lo implementa).
type StatsMetrics interface {
	ObserveStats(d time.Duration)
}

// StatsUseCase calcula totalProducts, totalValue y lowStockItems.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	metrics   StatsMetrics
}

// NewStatsUseCase construye el caso de uso. m puede ser nil.
func NewStatsUseCase(statsRepo repository.StatsRepository, m StatsMetrics) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo, metrics: m}
}

// GetStats ejecuta las tres consultas en paralelo y arma el resultado cuando terminan todas.
// Si alguna falla, la llamada completa falla (no hay estadísticas parciales).
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	start := time.Now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.ObserveStats(time.Since(start))
		}
	}()

	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}

	productsCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	lowCh := make(chan countResult, 1)

	go func() {
		n, err := uc.statsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.statsRepo.TotalInventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLowStock(ctx, LowStockThreshold)
		lowCh <- countResult{n, err}
	}()

	products := <-productsCh
	value := <-valueCh
	low := <-lowCh

	if products.err != nil {
		return nil, fmt.Errorf("stats: total de productos: %w", products.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("stats: valor del inventario: %w", value.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("stats: bajo stock: %w", low.err)
	}

	return &dto.StatsResponse{
		TotalProducts: products.n,
		TotalValue:    value.v.Round(2),
		LowStockItems: low.n,
	}, nil
}
