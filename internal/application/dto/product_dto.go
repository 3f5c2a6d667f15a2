package dto

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (JSON o multipart).
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       int              `json:"stock"`
	CategoryID  *int64           `json:"category_id"`
	Description *string          `json:"description"`
	Barcode     *string          `json:"barcode"`
	ImageURL    *string          `json:"image_url"`
}

// UpdateProductRequest actualización parcial: solo los campos no nulos reemplazan.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *int64           `json:"category_id"`
	Description *string          `json:"description"`
	Barcode     *string          `json:"barcode"`
	ImageURL    *string          `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category_id"`
	Description *string         `json:"description"`
	Barcode     *string         `json:"barcode"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ImageUpload archivo de imagen recibido en un POST multipart.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
