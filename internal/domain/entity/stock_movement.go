package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN     = "IN"     // entrada
	MovementTypeOUT    = "OUT"    // salida
	MovementTypeADJUST = "ADJUST" // ajuste (cualquier signo)
)

// StockMovement es un evento inmutable del ledger: cambio de cantidad sobre un producto.
type StockMovement struct {
	ID             int64
	ProductID      int64
	QuantityChange int  // positivo = entrada, negativo = salida
	Reason         string
	Type           string
	Balance        *int // stock resultante (snapshot)
	CreatedAt      time.Time
}

// MovementWithProduct movimiento con nombre y precio del producto, para listados.
type MovementWithProduct struct {
	StockMovement
	ProductName  string
	ProductPrice decimal.Decimal
}
