package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/ports"
)

func TestGenerateStockReport_DevuelvePDF(t *testing.T) {
	g := NewMarotoReportGenerator("inventory-manager")
	data := ports.StockReportData{
		GeneratedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Products: []dto.ProductResponse{
			{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 50},
			{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("2.50"), Stock: 3},
		},
		Stats: dto.StatsResponse{
			TotalProducts: 2,
			TotalValue:    decimal.RequireFromString("507.00"),
			LowStockItems: 1,
		},
		LowStockThreshold: 10,
	}

	out, err := g.GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateStockReport_SinProductos(t *testing.T) {
	out, err := NewMarotoReportGenerator("x").GenerateStockReport(context.Background(), ports.StockReportData{
		GeneratedAt:       time.Now(),
		LowStockThreshold: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
