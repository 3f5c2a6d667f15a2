package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

// StatsHandler estadísticas agregadas y reporte PDF (protegido).
type StatsHandler struct {
	stats  *analytics.StatsUseCase
	report *usecase.ReportUseCase
	log    *logger.Logger
}

func NewStatsHandler(stats *analytics.StatsUseCase, report *usecase.ReportUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, report: report, log: log}
}

// GetStats godoc
// @Summary  Estadísticas del inventario
// @Tags     stats
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.StatsResponse
// @Router   /stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error fetching stats"})
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary  Reporte de inventario en PDF
// @Tags     products
// @Security Bearer
// @Produce  application/pdf
// @Success  200
// @Router   /products/report [get]
func (h *StatsHandler) StockReport(c *fiber.Ctx) error {
	pdf, err := h.report.StockReport(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, errMsgs{internal: "Error generating report"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(pdf)
}
