package ports

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
)

// StockReportData contenido del reporte de inventario.
type StockReportData struct {
	GeneratedAt       time.Time
	Products          []dto.ProductResponse
	Stats             dto.StatsResponse
	LowStockThreshold int
}

// StockReportGenerator renderiza el reporte de inventario (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
