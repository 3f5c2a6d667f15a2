package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/pkg/config"
)

// testPool conecta a TEST_DATABASE_URL, aplica migraciones y vacía las tablas.
// Sin la variable el test se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, MigrateUp(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE stock_movements, products, categories, users, app_settings RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO app_settings (settings) VALUES ('{}'::jsonb)`)
	require.NoError(t, err)
	return pool
}

func createProduct(t *testing.T, repo *ProductRepo, name string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, Price: decimal.RequireFromString("9.99"), Stock: stock}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestIntegration_LedgerConcurrenteNoPierdeActualizaciones(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	products := NewProductRepository(pool)
	p := createProduct(t, products, "Widget", 20)

	uc := inventory.NewLedgerUseCase(NewTxRunner(pool), NewStockMovementRepository(pool), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: p.ID, QuantityChange: -1, Reason: "venta"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	history, err := uc.ProductHistory(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 20)
	balances := map[int]bool{}
	for _, m := range history {
		require.NotNil(t, m.Balance)
		balances[*m.Balance] = true
	}
	assert.Len(t, balances, 20, "cada movimiento ve el stock que dejó el anterior")
}

func TestIntegration_LedgerProductoInexistenteNoEscribe(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	uc := inventory.NewLedgerUseCase(NewTxRunner(pool), NewStockMovementRepository(pool), nil)

	_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: 404, QuantityChange: 1, Reason: "compra"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&n))
	assert.Zero(t, n)
}

func TestIntegration_RestriccionesMapeanADominio(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	users := NewUserRepository(pool)
	require.NoError(t, users.Create(ctx, &entity.User{Email: "ana@example.com", PasswordHash: "h"}))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{Email: "ana@example.com", PasswordHash: "h"}), domain.ErrDuplicate)

	products := NewProductRepository(pool)
	missing := int64(999)
	err := products.Create(ctx, &entity.Product{Name: "x", Price: decimal.NewFromInt(1), CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrConflict)

	p := createProduct(t, products, "Widget", 5)
	require.NoError(t, NewStockMovementRepository(pool).Create(ctx,
		&entity.StockMovement{ProductID: p.ID, QuantityChange: 1, Reason: "compra", Type: entity.MovementTypeIN}))
	assert.ErrorIs(t, products.Delete(ctx, p.ID), domain.ErrConflict)
	assert.ErrorIs(t, products.Delete(ctx, 12345), domain.ErrNotFound)
}

func TestIntegration_CategoriaBorradaDejaProductoSinCategoria(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	categories := NewCategoryRepository(pool)
	c := &entity.Category{Name: "Herramientas"}
	require.NoError(t, categories.Create(ctx, c))

	products := NewProductRepository(pool)
	p := &entity.Product{Name: "Martillo", Price: decimal.NewFromInt(15), CategoryID: &c.ID}
	require.NoError(t, products.Create(ctx, p))

	require.NoError(t, categories.Delete(ctx, c.ID))
	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}

func TestIntegration_StatsYSettings(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	products := NewProductRepository(pool)
	createProduct(t, products, "Widget", 50)
	createProduct(t, products, "Gadget", 2)

	stats := NewStatsRepository(pool)
	n, err := stats.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	v, err := stats.TotalInventoryValue(ctx)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("519.48")), v.String())
	low, err := stats.CountLowStock(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), low)

	settings := NewAppSettingsRepository(pool)
	s, err := settings.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.NoError(t, settings.Replace(ctx, s.ID, map[string]any{"currency": "COP"}))
	s, err = settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "COP", s.Settings["currency"])
	assert.ErrorIs(t, settings.Replace(ctx, 999, map[string]any{}), domain.ErrNotFound)
}
