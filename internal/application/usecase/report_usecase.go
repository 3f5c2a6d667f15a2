package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/application/ports"
)

// ReportUseCase genera el reporte PDF de stock (productos + estadísticas).
type ReportUseCase struct {
	products  *ProductUseCase
	stats     *analytics.StatsUseCase
	generator ports.StockReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products *ProductUseCase, stats *analytics.StatsUseCase, generator ports.StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, stats: stats, generator: generator}
}

// StockReport devuelve los bytes del PDF.
func (uc *ReportUseCase) StockReport(ctx context.Context) ([]byte, error) {
	products, err := uc.products.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", err)
	}
	stats, err := uc.stats.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	return uc.generator.GenerateStockReport(ctx, ports.StockReportData{
		GeneratedAt:       time.Now(),
		Products:          products,
		Stats:             *stats,
		LowStockThreshold: analytics.LowStockThreshold,
	})
}
