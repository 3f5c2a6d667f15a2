package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// errMsgs mensajes públicos por handler para los casos 404 y 500.
type errMsgs struct {
	notFound string
	internal string
}

// respondError traduce un error de dominio a status HTTP + {"message": ...}.
// Los 5xx se registran con la causa; al cliente solo llega el mensaje público.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, msgs errMsgs) error {
	var vErr *domain.ValidationError
	var upErr *domain.UploadError

	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: vErr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid input"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		msg := msgs.notFound
		if msg == "" {
			msg = "Resource not found"
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: msg})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Resource already exists"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Operation conflicts with related records"})
	case errors.As(err, &upErr):
		log.Error().Err(err).Str("path", c.Path()).Msg("subida de imagen")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error uploading image",
			Detail:  upErr.Err.Error(),
		})
	}

	msg := msgs.internal
	if msg == "" {
		msg = "Internal server error"
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: msg})
}
