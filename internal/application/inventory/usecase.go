package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
	"github.com/jhoicas/inventory-manager/pkg/metrics"
)

// LedgerUseCase registra movimientos de stock de forma transaccional y expone el historial.
//
// Cada movimiento es una sola transacción: bloqueo de la fila del producto (SELECT FOR UPDATE),
// INSERT del movimiento y UPDATE stock = stock + delta. Si cualquiera falla, Rollback y nada
// queda visible. No hay reintentos: el caller decide si reenviar.
type LedgerUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
	metrics  MovementMetrics
}

// NewLedgerUseCase construye el caso de uso. m puede ser nil.
func NewLedgerUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository, m MovementMetrics) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movRepo: movRepo, metrics: m}
}

// MovementInput entrada para registrar un movimiento.
// Type vacío se deduce del signo: positivo IN, negativo OUT.
// Balance vacío se completa con el stock resultante calculado bajo el bloqueo.
type MovementInput struct {
	ProductID      int64
	QuantityChange int
	Reason         string
	Type           string
	Balance        *int
}

// RecordMovement valida la entrada y ejecuta la transacción del ledger.
// Devuelve ValidationError, domain.ErrNotFound (producto inexistente) o TransactionError.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	movType, err := normalizeMovement(&in)
	if err != nil {
		uc.count(in.Type, metrics.OutcomeRejected)
		return nil, err
	}

	var created *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto hasta el Commit/Rollback
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		balance := in.Balance
		if balance == nil {
			b := product.Stock + in.QuantityChange
			balance = &b
		}
		mov := &entity.StockMovement{
			ProductID:      in.ProductID,
			QuantityChange: in.QuantityChange,
			Reason:         in.Reason,
			Type:           movType,
			Balance:        balance,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if _, err := productRepo.AdjustStock(ctx, in.ProductID, in.QuantityChange); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.count(movType, metrics.OutcomeRejected)
			return nil, err
		}
		uc.count(movType, metrics.OutcomeFailed)
		return nil, &domain.TransactionError{Op: "registrar movimiento", Err: err}
	}
	uc.count(movType, metrics.OutcomeRecorded)
	return created, nil
}

// ProductHistory lista los movimientos de un producto, más recientes primero.
// Un producto sin movimientos (o inexistente) devuelve lista vacía.
func (uc *LedgerUseCase) ProductHistory(ctx context.Context, productID int64) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// ListMovements lista todos los movimientos con nombre y precio del producto, más recientes primero.
func (uc *LedgerUseCase) ListMovements(ctx context.Context) ([]dto.MovementWithProductResponse, error) {
	list, err := uc.movRepo.ListWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementWithProductResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementWithProductResponse{
			MovementResponse: ToMovementResponse(&m.StockMovement),
			ProductName:      m.ProductName,
			ProductPrice:     m.ProductPrice,
		})
	}
	return out, nil
}

// normalizeMovement valida campos obligatorios y devuelve el tipo normalizado.
func normalizeMovement(in *MovementInput) (string, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if in.ProductID <= 0 || in.QuantityChange == 0 || in.Reason == "" {
		return "", domain.NewValidationError("All fields are required")
	}

	movType := strings.ToUpper(strings.TrimSpace(in.Type))
	if movType == "" {
		movType = entity.MovementTypeIN
		if in.QuantityChange < 0 {
			movType = entity.MovementTypeOUT
		}
	}
	switch movType {
	case entity.MovementTypeIN:
		if in.QuantityChange < 0 {
			return "", domain.NewValidationError("IN movements require a positive quantity_change")
		}
	case entity.MovementTypeOUT:
		if in.QuantityChange > 0 {
			return "", domain.NewValidationError("OUT movements require a negative quantity_change")
		}
	case entity.MovementTypeADJUST:
	default:
		return "", domain.NewValidationError("type must be one of IN, OUT, ADJUST")
	}
	return movType, nil
}

func (uc *LedgerUseCase) count(movType, outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncMovement(strings.ToUpper(movType), outcome)
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		QuantityChange: m.QuantityChange,
		Reason:         m.Reason,
		Type:           m.Type,
		Balance:        m.Balance,
		CreatedAt:      m.CreatedAt,
	}
}
