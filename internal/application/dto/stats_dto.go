package dto

import "github.com/shopspring/decimal"

// StatsResponse agregados de GET /stats.
type StatsResponse struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockItems int64           `json:"lowStockItems"`
}
