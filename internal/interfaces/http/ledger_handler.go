package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// LedgerHandler movimientos de stock: registro e historial (protegido).
type LedgerHandler struct {
	uc  *inventory.LedgerUseCase
	log *logger.Logger
}

func NewLedgerHandler(uc *inventory.LedgerUseCase, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{uc: uc, log: log}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Inserta el movimiento y ajusta products.stock en una sola transacción.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /transactions [post]
func (h *LedgerHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	mov, err := h.uc.RecordMovement(c.UserContext(), inventory.MovementInput{
		ProductID:      in.ProductID,
		QuantityChange: in.QuantityChange,
		Reason:         in.Reason,
		Type:           in.Type,
		Balance:        in.Balance,
	})
	if err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "Product not found", internal: "Error processing transaction"})
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToMovementResponse(mov))
}

// StockHistory godoc
// @Summary  Historial de movimientos de un producto
// @Tags     products
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID del producto"
// @Success  200  {array}  dto.MovementResponse
// @Router   /products/{id}/stock-history [get]
func (h *LedgerHandler) StockHistory(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	out, err := h.uc.ProductHistory(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching product history"})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary  Todos los movimientos con nombre y precio del producto
// @Tags     products
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.MovementWithProductResponse
// @Router   /products/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching movement history"})
	}
	return c.JSON(out)
}
