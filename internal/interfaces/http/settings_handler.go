package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// SettingsHandler configuración de la aplicación (protegido).
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log *logger.Logger
}

func NewSettingsHandler(uc *usecase.SettingsUseCase, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary  Obtener settings
// @Tags     appsettings
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.AppSettingsResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /appsettings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "App settings not found", internal: "Error fetching app settings"})
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar settings
// @Description  El body es el objeto de settings completo; también se acepta {"settings": {...}}.
// @Tags         appsettings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id   path  int  true  "ID de la fila de settings"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /appSettings/{id} [put]
func (h *SettingsHandler) Replace(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	var body map[string]any
	if err := bindJSON(c, &body); err != nil {
		return respondError(c, h.log, err, errMsgs{})
	}
	if inner, ok := body["settings"].(map[string]any); ok && len(body) == 1 {
		body = inner
	}
	if err := h.uc.Replace(c.UserContext(), id, body); err != nil {
		return respondError(c, h.log, err, errMsgs{notFound: "App settings not found", internal: "Error updating app settings"})
	}
	return c.JSON(dto.MessageResponse{Message: "App settings updated"})
}
