package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/auth"
	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// AuthHandler maneja registro, login y cambio de contraseña.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Email y password"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Email already registered"})
		}
		return respondError(c, h.log, err, errMsgs{internal: "Error creating user"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{Message: "Registration successful", Data: *out})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	token, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid credentials"})
		}
		return respondError(c, h.log, err, errMsgs{internal: "Server error during login"})
	}
	return c.JSON(dto.LoginResponse{Message: "Login successful", Token: token})
}

// ChangePassword godoc
// @Summary      Cambiar contraseña del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /users/change-password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
	}
	var in dto.ChangePasswordRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if err := h.uc.ChangePassword(c.UserContext(), p.ID, in); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Incorrect current password"})
		}
		return respondError(c, h.log, err, errMsgs{notFound: "User not found", internal: "Error during password change"})
	}
	return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
}
