package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/ports"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/memory"
)

type captureGenerator struct {
	data ports.StockReportData
}

func (g *captureGenerator) GenerateStockReport(_ context.Context, data ports.StockReportData) ([]byte, error) {
	g.data = data
	return []byte("%PDF-fake"), nil
}

func TestStockReport_ArmaDatosDeProductosYEstadisticas(t *testing.T) {
	store := memory.NewStore()
	products := usecase.NewProductUseCase(memory.NewProductRepository(store), nil, 0)
	stats := analytics.NewStatsUseCase(memory.NewStatsRepository(store), nil)
	gen := &captureGenerator{}
	uc := usecase.NewReportUseCase(products, stats, gen)
	ctx := context.Background()

	_, err := products.Create(ctx, dto.CreateProductRequest{Name: "Widget", Price: price("2.00"), Stock: 3}, nil)
	require.NoError(t, err)

	pdf, err := uc.StockReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))

	require.Len(t, gen.data.Products, 1)
	assert.Equal(t, int64(1), gen.data.Stats.TotalProducts)
	assert.Equal(t, int64(1), gen.data.Stats.LowStockItems)
	assert.Equal(t, analytics.LowStockThreshold, gen.data.LowStockThreshold)
	assert.False(t, gen.data.GeneratedAt.IsZero())
}

func TestStockReport_FalloDeEstadisticas(t *testing.T) {
	store := memory.NewStore()
	store.FailStatsValue = memory.ErrInjected
	uc := usecase.NewReportUseCase(
		usecase.NewProductUseCase(memory.NewProductRepository(store), nil, 0),
		analytics.NewStatsUseCase(memory.NewStatsRepository(store), nil),
		&captureGenerator{},
	)
	_, err := uc.StockReport(context.Background())
	assert.ErrorIs(t, err, memory.ErrInjected)
}
