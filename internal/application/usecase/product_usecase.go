package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/ports"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// El stock se puede editar directamente (PUT) además de por movimientos del ledger.
type ProductUseCase struct {
	repo          repository.ProductRepository
	storage       ports.ImageStorage // nil = subida de imágenes deshabilitada
	uploadTimeout time.Duration
}

// NewProductUseCase construye el caso de uso. storage puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, storage ports.ImageStorage, uploadTimeout time.Duration) *ProductUseCase {
	if uploadTimeout <= 0 {
		uploadTimeout = 10 * time.Second
	}
	return &ProductUseCase{repo: repo, storage: storage, uploadTimeout: uploadTimeout}
}

// List devuelve todos los productos; si search no está vacío filtra por nombre sin distinguir mayúsculas.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(fold.String(p.Name), needle) {
			continue
		}
		out = append(out, *ToProductResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Create inserta un producto. Si image no es nil se sube primero y su URL reemplaza image_url.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, image *dto.ImageUpload) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Price == nil {
		return nil, domain.NewValidationError("Name and price are required")
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price must not be negative")
	}

	product := &entity.Product{
		Name:        in.Name,
		Price:       *in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Description: in.Description,
		Barcode:     in.Barcode,
		ImageURL:    in.ImageURL,
	}

	if image != nil {
		url, err := uc.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = &url
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update actualización parcial; devuelve domain.ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name must not be empty")
		}
		product.Name = name
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("price must not be negative")
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	if in.ImageURL != nil {
		product.ImageURL = in.ImageURL
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto. Con movimientos registrados el repositorio devuelve domain.ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// uploadImage sube la imagen con timeout; cualquier fallo se devuelve como *domain.UploadError.
func (uc *ProductUseCase) uploadImage(ctx context.Context, image *dto.ImageUpload) (string, error) {
	if uc.storage == nil {
		return "", &domain.UploadError{Err: fmt.Errorf("almacenamiento de imágenes no configurado")}
	}
	ctx, cancel := context.WithTimeout(ctx, uc.uploadTimeout)
	defer cancel()

	key := "products/" + uuid.New().String() + strings.ToLower(path.Ext(image.Filename))
	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := uc.storage.Upload(ctx, key, contentType, image.Body, image.Size)
	if err != nil {
		return "", &domain.UploadError{Err: err}
	}
	return url, nil
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Barcode:     p.Barcode,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
