package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-manager/pkg/metrics"
)

type movementCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *movementCounter) IncMovement(movementType, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = map[string]int{}
	}
	m.counts[movementType+"/"+outcome]++
}

func (m *movementCounter) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

// newLedger construye el ledger sobre el store en memoria con un producto Widget (9.99, stock 50).
func newLedger(t *testing.T) (*inventory.LedgerUseCase, *memory.Store, *entity.Product, *movementCounter) {
	t.Helper()
	store := memory.NewStore()
	product := &entity.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 50}
	require.NoError(t, memory.NewProductRepository(store).Create(context.Background(), product))

	counter := &movementCounter{}
	uc := inventory.NewLedgerUseCase(memory.NewTxRunner(store), memory.NewStockMovementRepository(store), counter)
	return uc, store, product, counter
}

func stockOf(t *testing.T, store *memory.Store, id int64) int {
	t.Helper()
	p, err := memory.NewProductRepository(store).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func TestRecordMovement_SalidaDescuentaStock(t *testing.T) {
	uc, store, product, counter := newLedger(t)

	mov, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: product.ID, QuantityChange: -5, Reason: "sale", Type: "OUT",
	})
	require.NoError(t, err)

	assert.NotZero(t, mov.ID)
	assert.False(t, mov.CreatedAt.IsZero(), "created_at lo asigna el almacenamiento")
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	require.NotNil(t, mov.Balance)
	assert.Equal(t, 45, *mov.Balance, "balance omitido = stock resultante")

	assert.Equal(t, 45, stockOf(t, store, product.ID))
	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, -5, movs[0].QuantityChange)
	assert.Equal(t, 1, counter.get("OUT/"+metrics.OutcomeRecorded))
}

func TestRecordMovement_BalanceExplicitoSeRespeta(t *testing.T) {
	uc, _, product, _ := newLedger(t)
	balance := 999

	mov, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: product.ID, QuantityChange: 3, Reason: "recount", Type: "adjust", Balance: &balance,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeADJUST, mov.Type, "el tipo se normaliza a mayúsculas")
	assert.Equal(t, 999, *mov.Balance)
}

func TestRecordMovement_TipoSeDeduceDelSigno(t *testing.T) {
	uc, _, product, _ := newLedger(t)
	ctx := context.Background()

	in, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: product.ID, QuantityChange: 10, Reason: "purchase"})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeIN, in.Type)

	out, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: product.ID, QuantityChange: -1, Reason: "sale"})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOUT, out.Type)
}

func TestRecordMovement_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"sin producto", inventory.MovementInput{QuantityChange: 1, Reason: "x"}},
		{"cantidad cero", inventory.MovementInput{ProductID: 1, Reason: "x"}},
		{"razón vacía", inventory.MovementInput{ProductID: 1, QuantityChange: 1, Reason: "   "}},
		{"tipo desconocido", inventory.MovementInput{ProductID: 1, QuantityChange: 1, Reason: "x", Type: "MOVE"}},
		{"IN negativo", inventory.MovementInput{ProductID: 1, QuantityChange: -1, Reason: "x", Type: "IN"}},
		{"OUT positivo", inventory.MovementInput{ProductID: 1, QuantityChange: 1, Reason: "x", Type: "OUT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store, product, _ := newLedger(t)
			_, err := uc.RecordMovement(context.Background(), tc.in)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			var vErr *domain.ValidationError
			assert.True(t, errors.As(err, &vErr))
			assert.Empty(t, store.Movements())
			assert.Equal(t, 50, stockOf(t, store, product.ID))
		})
	}
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	uc, store, _, counter := newLedger(t)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 404, QuantityChange: 1, Reason: "x",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.Movements())
	assert.Equal(t, 1, counter.get("IN/"+metrics.OutcomeRejected))
}

// Si el ajuste de stock falla después del INSERT del movimiento, no debe quedar nada visible.
func TestRecordMovement_RollbackSiFallaAjuste(t *testing.T) {
	uc, store, product, counter := newLedger(t)
	store.FailAdjustStock = memory.ErrInjected

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: product.ID, QuantityChange: -5, Reason: "sale", Type: "OUT",
	})
	require.Error(t, err)

	var txErr *domain.TransactionError
	require.True(t, errors.As(err, &txErr), "los fallos de almacenamiento se envuelven en TransactionError")
	assert.ErrorIs(t, err, memory.ErrInjected)
	assert.Empty(t, store.Movements(), "el movimiento insertado debe deshacerse")
	assert.Equal(t, 50, stockOf(t, store, product.ID))
	assert.Equal(t, 1, counter.get("OUT/"+metrics.OutcomeFailed))
}

func TestRecordMovement_FalloAlInsertarMovimiento(t *testing.T) {
	uc, store, product, _ := newLedger(t)
	store.FailMovementCreate = memory.ErrInjected

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: product.ID, QuantityChange: 2, Reason: "purchase",
	})
	var txErr *domain.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, 50, stockOf(t, store, product.ID))
}

func TestRecordMovement_ConcurrenteMismoProducto(t *testing.T) {
	uc, store, product, _ := newLedger(t)
	const workers = 40

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		change := -1
		if i%2 == 0 {
			change = 3
		}
		go func(change int) {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
				ProductID: product.ID, QuantityChange: change, Reason: "concurrent",
			})
			errs <- err
		}(change)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	movs := store.Movements()
	require.Len(t, movs, workers)
	sum := 0
	for _, m := range movs {
		sum += m.QuantityChange
	}
	assert.Equal(t, 50+sum, stockOf(t, store, product.ID), "stock = inicial + suma de movimientos")
}

func TestProductHistory_MasRecientePrimero(t *testing.T) {
	uc, _, product, _ := newLedger(t)
	ctx := context.Background()
	for _, change := range []int{5, -2, 7} {
		_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: product.ID, QuantityChange: change, Reason: "r"})
		require.NoError(t, err)
	}

	history, err := uc.ProductHistory(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 7, history[0].QuantityChange)
	assert.Equal(t, 5, history[2].QuantityChange)
}

func TestProductHistory_ProductoSinMovimientosDevuelveVacio(t *testing.T) {
	uc, _, _, _ := newLedger(t)

	history, err := uc.ProductHistory(context.Background(), 12345)
	require.NoError(t, err)
	assert.NotNil(t, history, "debe serializarse como [] y no null")
	assert.Empty(t, history)
}

func TestListMovements_IncluyeNombreYPrecio(t *testing.T) {
	uc, _, product, _ := newLedger(t)
	ctx := context.Background()
	_, err := uc.RecordMovement(ctx, inventory.MovementInput{ProductID: product.ID, QuantityChange: -5, Reason: "sale"})
	require.NoError(t, err)

	all, err := uc.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Widget", all[0].ProductName)
	assert.True(t, decimal.RequireFromString("9.99").Equal(all[0].ProductPrice))
	assert.Equal(t, product.ID, all[0].ProductID)
}
