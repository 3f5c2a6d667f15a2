package entity

import "time"

// Category agrupa productos; Product.CategoryID la referencia opcionalmente.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
