package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es un contador desnormalizado: lo ajusta el ledger de movimientos y las ediciones directas.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *int64
	Description *string
	Barcode     *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
