package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/application/auth"
	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/pkg/logger"
	"github.com/jhoicas/inventory-manager/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SettingsUC  *usecase.SettingsUseCase
	ReportUC    *usecase.ReportUseCase
	LedgerUC    *inventory.LedgerUseCase
	StatsUC     *analytics.StatsUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	CORSOrigins string // vacío = "*"
	AppName     string
	Logger      *logger.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer // nil = sin /metrics
}

// Router registra middlewares y rutas de la API. La ruta catch-all 404 queda al final y sin auth.
// Fiber no distingue mayúsculas en las rutas: /appSettings y /appsettings son la misma.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	origins := strings.TrimSpace(deps.CORSOrigins)
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(RequestLogger(log.Named("http"), deps.Metrics))

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Operación (público)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Put("/users/change-password", requireAuth, authHandler.ChangePassword)

	// Products (protegido). Rutas fijas antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC, log)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, log)
	statsHandler := NewStatsHandler(deps.StatsUC, deps.ReportUC, log)
	app.Get("/products", requireAuth, productHandler.List)
	app.Post("/products", requireAuth, productHandler.Create)
	app.Get("/products/movements", requireAuth, ledgerHandler.ListMovements)
	app.Get("/products/report", requireAuth, statsHandler.StockReport)
	app.Get("/products/:id<int>/stock-history", requireAuth, ledgerHandler.StockHistory)
	app.Get("/products/:id<int>", requireAuth, productHandler.GetByID)
	app.Put("/products/:id<int>", requireAuth, productHandler.Update)
	app.Delete("/products/:id<int>", requireAuth, productHandler.Delete)

	// Ledger
	app.Post("/transactions", requireAuth, ledgerHandler.RecordMovement)

	// Categories
	categoryHandler := NewCategoryHandler(deps.CategoryUC, log)
	app.Get("/categories", requireAuth, categoryHandler.List)
	app.Post("/categories", requireAuth, categoryHandler.Create)
	app.Put("/categories/:id<int>", requireAuth, categoryHandler.Update)
	app.Delete("/categories/:id<int>", requireAuth, categoryHandler.Delete)

	// App settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC, log)
	app.Get("/appsettings", requireAuth, settingsHandler.Get)
	app.Put("/appsettings/:id<int>", requireAuth, settingsHandler.Replace)

	// Stats
	app.Get("/stats", requireAuth, statsHandler.GetStats)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Route not found"})
	})
}
