package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/memory"
)

type durationRecorder struct{ calls int }

func (d *durationRecorder) ObserveStats(time.Duration) { d.calls++ }

func TestGetStats_SinProductosDevuelveCeros(t *testing.T) {
	store := memory.NewStore()
	rec := &durationRecorder{}
	uc := analytics.NewStatsUseCase(memory.NewStatsRepository(store), rec)

	out, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Equal(t, int64(0), out.LowStockItems)
	assert.Equal(t, 1, rec.calls)
}

func TestGetStats_CalculaAgregados(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	ctx := context.Background()
	for _, p := range []entity.Product{
		{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 50},
		{Name: "Gadget", Price: decimal.RequireFromString("2.50"), Stock: 4},
		{Name: "Bolt", Price: decimal.RequireFromString("0.10"), Stock: 10},
	} {
		p := p
		require.NoError(t, repo.Create(ctx, &p))
	}
	uc := analytics.NewStatsUseCase(memory.NewStatsRepository(store), nil)

	out, err := uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalProducts)
	// 9.99*50 + 2.50*4 + 0.10*10 = 499.50 + 10 + 1
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("510.50")), out.TotalValue.String())
	assert.Equal(t, int64(1), out.LowStockItems, "stock 10 no cuenta: el umbral es estricto")
}

func TestGetStats_FallaComoUnidad(t *testing.T) {
	store := memory.NewStore()
	store.FailStatsValue = memory.ErrInjected
	uc := analytics.NewStatsUseCase(memory.NewStatsRepository(store), nil)

	out, err := uc.GetStats(context.Background())
	require.ErrorIs(t, err, memory.ErrInjected)
	assert.Nil(t, out, "no hay estadísticas parciales")
}
