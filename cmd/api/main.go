package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventory-manager/internal/application/analytics"
	"github.com/jhoicas/inventory-manager/internal/application/auth"
	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/application/ports"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventory-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventory-manager/internal/interfaces/http"
	"github.com/jhoicas/inventory-manager/pkg/config"
	"github.com/jhoicas/inventory-manager/pkg/logger"
	"github.com/jhoicas/inventory-manager/pkg/metrics"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.MigrateUp(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	registry := metrics.NewRegistry()
	appMetrics := metrics.New(registry)

	// Imágenes de productos: solo si hay bucket configurado.
	var imageStorage ports.ImageStorage
	if cfg.Storage.Enabled() {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		imageStorage = s3Storage
	} else {
		log.Warn().Msg("S3_BUCKET vacío: subida de imágenes deshabilitada")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewAppSettingsRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, movementRepo, appMetrics)
	statsUC := analytics.NewStatsUseCase(statsRepo, appMetrics)
	productUC := usecase.NewProductUseCase(productRepo, imageStorage, cfg.Storage.UploadTimeout)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reportUC := usecase.NewReportUseCase(productUC, statsUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name))
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en http://localhost:<port>/docs (solo si el archivo existe)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventory Manager API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SettingsUC:  settingsUC,
		ReportUC:    reportUC,
		LedgerUC:    ledgerUC,
		StatsUC:     statsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		AppName:     cfg.App.Name,
		Logger:      log,
		Metrics:     appMetrics,
		Gatherer:    registry,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
