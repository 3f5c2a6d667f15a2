package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/memory"
)

const catalogJSON = `[
  {"name": "Martillo", "price": "15.50", "stock": 12, "category": "Herramientas"},
  {"name": "Destornillador", "price": "4.25", "stock": 0, "category": "herramientas"},
  {"name": "Tornillo", "price": 0.1, "stock": 500}
]`

func newTestSeeder(store *memory.Store) *seeder {
	return &seeder{
		categories: usecase.NewCategoryUseCase(memory.NewCategoryRepository(store)),
		products:   usecase.NewProductUseCase(memory.NewProductRepository(store), nil, 0),
		ledger: inventory.NewLedgerUseCase(memory.NewTxRunner(store),
			memory.NewStockMovementRepository(store), nil),
	}
}

func TestSeeder_CreaCategoriasProductosYMovimientos(t *testing.T) {
	var items []catalogItem
	require.NoError(t, json.Unmarshal([]byte(catalogJSON), &items))

	store := memory.NewStore()
	s := newTestSeeder(store)
	ctx := context.Background()

	created, err := s.run(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	categories, err := s.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1, "la categoría se reutiliza sin distinguir mayúsculas")

	products, err := s.products.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, 12, products[0].Stock)
	assert.Equal(t, 0, products[1].Stock)
	assert.Equal(t, 500, products[2].Stock)
	assert.Nil(t, products[2].CategoryID)

	movements := store.Movements()
	require.Len(t, movements, 2, "stock 0 no genera movimiento")
	for _, m := range movements {
		assert.Equal(t, entity.MovementTypeADJUST, m.Type)
		assert.Equal(t, "initial stock", m.Reason)
	}
}

func TestSeeder_ProductoInvalidoDetieneLaCarga(t *testing.T) {
	items := []catalogItem{{Name: "Martillo"}, {Name: ""}}
	s := newTestSeeder(memory.NewStore())

	created, err := s.run(context.Background(), items)
	require.Error(t, err)
	assert.Equal(t, 1, created)
}
