package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/pkg/jwt"
)

// Locals keys del principal autenticado.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// Principal usuario autenticado por el token.
type Principal struct {
	ID    int64
	Email string
}

// AuthMiddleware valida el JWT del header Authorization ("Bearer <token>" o el token solo)
// y guarda el principal en c.Locals. Cualquier fallo corta la cadena con 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "No token provided"})
		}
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "No token provided"})
		}
		userID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal (después del middleware de auth); ok=false si no hay.
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	id, _ := c.Locals(LocalUserID).(int64)
	if id <= 0 {
		return Principal{}, false
	}
	email, _ := c.Locals(LocalEmail).(string)
	return Principal{ID: id, Email: email}, true
}
