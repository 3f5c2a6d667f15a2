package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest cuerpo de POST /transactions. La validación la hace el ledger.
type RecordMovementRequest struct {
	ProductID      int64  `json:"product_id"`
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason"`
	Type           string `json:"type"`
	Balance        *int   `json:"balance"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	QuantityChange int       `json:"quantity_change"`
	Reason         string    `json:"reason"`
	Type           string    `json:"type"`
	Balance        *int      `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementWithProductResponse movimiento con datos del producto para GET /products/movements.
type MovementWithProductResponse struct {
	MovementResponse
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
}
