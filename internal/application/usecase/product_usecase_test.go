package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/memory"
)

type fakeStorage struct {
	key, contentType string
	body             string
	err              error
}

func (f *fakeStorage) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(body)
	f.key, f.contentType, f.body = key, contentType, string(b)
	return "https://cdn.example.com/" + key, nil
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestProductCreate_SinNombreOPrecio(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)

	for _, in := range []dto.CreateProductRequest{
		{Price: price("1.00")},
		{Name: "   ", Price: price("1.00")},
		{Name: "Widget"},
	} {
		_, err := uc.Create(context.Background(), in, nil)
		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "Name and price are required", vErr.Message)
	}
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Widget", Price: price("-1")}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_ConImagenUsaURLSubida(t *testing.T) {
	storage := &fakeStorage{}
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), storage, 0)

	out, err := uc.Create(context.Background(),
		dto.CreateProductRequest{Name: "Widget", Price: price("9.99"), Stock: 3, ImageURL: strPtr("ignorada")},
		&dto.ImageUpload{Filename: "Foto.PNG", ContentType: "image/png", Size: 4, Body: strings.NewReader("\x89PNG")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(storage.key, "products/"))
	assert.True(t, strings.HasSuffix(storage.key, ".png"))
	assert.Equal(t, "image/png", storage.contentType)
	assert.Equal(t, "\x89PNG", storage.body)
	require.NotNil(t, out.ImageURL)
	assert.Equal(t, "https://cdn.example.com/"+storage.key, *out.ImageURL)
}

func TestProductCreate_FalloDeSubidaNoInserta(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	uc := usecase.NewProductUseCase(repo, &fakeStorage{err: context.DeadlineExceeded}, 0)

	_, err := uc.Create(context.Background(),
		dto.CreateProductRequest{Name: "Widget", Price: price("1")},
		&dto.ImageUpload{Filename: "a.jpg", Body: strings.NewReader("x")})

	var upErr *domain.UploadError
	require.True(t, errors.As(err, &upErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductCreate_ImagenSinAlmacenamientoConfigurado(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	_, err := uc.Create(context.Background(),
		dto.CreateProductRequest{Name: "Widget", Price: price("1")},
		&dto.ImageUpload{Filename: "a.jpg", Body: strings.NewReader("x")})

	var upErr *domain.UploadError
	assert.True(t, errors.As(err, &upErr))
}

func TestProductList_BusquedaSinDistinguirMayusculas(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	ctx := context.Background()
	for _, name := range []string{"Blue Widget", "Gadget", "WIDGET Pro"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Name: name, Price: price("1")}, nil)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "widget")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Blue Widget", out[0].Name)
	assert.Equal(t, "WIDGET Pro", out[1].Name)

	all, err := uc.List(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := uc.List(ctx, "tornillo")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProductGetByID_InexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	out, err := uc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUpdate_ParcialConservaCamposNoEnviados(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Name: "Widget", Price: price("9.99"), Stock: 5, Barcode: strPtr("123"),
	}, nil)
	require.NoError(t, err)

	stock := 7
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, "Widget", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 7, out.Stock)
	require.NotNil(t, out.Barcode)
	assert.Equal(t, "123", *out.Barcode)
}

func TestProductUpdate_InexistenteDevuelveNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), nil, 0)
	_, err := uc.Update(context.Background(), 42, dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_ConMovimientosEsConflicto(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewProductRepository(store)
	uc := usecase.NewProductUseCase(repo, nil, 0)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Widget", Price: price("1"), Stock: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, memory.NewStockMovementRepository(store).Create(ctx,
		&entity.StockMovement{ProductID: p.ID, QuantityChange: 1, Reason: "entrada", Type: entity.MovementTypeIN}))

	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
}
