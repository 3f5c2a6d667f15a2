package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// CategoryHandler CRUD HTTP de categorías (protegido).
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary  Listar categorías
// @Tags     categories
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.CategoryResponse
// @Router   /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching categories"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary  Crear categoría
// @Tags     categories
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.CategoryRequest  true  "Nombre"
// @Success  201   {object}  dto.CategoryResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error creating category"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary  Renombrar categoría
// @Tags     categories
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int  true  "ID de la categoría"
// @Param    body  body  dto.CategoryRequest  true  "Nombre"
// @Success  200   {object}  dto.MessageResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	var in dto.CategoryRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "Category not found", internal: "Error updating category"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Category %d updated", id)})
}

// Delete godoc
// @Summary  Eliminar categoría
// @Tags     categories
// @Security Bearer
// @Produce  json
// @Param    id   path  int  true  "ID de la categoría"
// @Success  200  {object}  dto.MessageResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "Category not found", internal: "Error deleting category"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Category %d deleted", id)})
}
