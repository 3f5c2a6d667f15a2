// seed carga un catálogo inicial de categorías y productos desde un archivo JSON.
//
// Uso: go run ./cmd/seed [ruta/catalog.json]
// Por defecto busca catalog.json en el directorio actual.
//
// El stock inicial no se escribe directo en products: el producto se crea con stock 0 y se
// registra un movimiento ADJUST "initial stock" por el ledger, para que stock = suma de movimientos.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-manager/internal/application/dto"
	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/application/usecase"
	"github.com/jhoicas/inventory-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-manager/pkg/config"
	"github.com/jhoicas/inventory-manager/pkg/logger"
)

type catalogItem struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Description *string         `json:"description"`
	Barcode     *string         `json:"barcode"`
	ImageURL    *string         `json:"image_url"`
}

func main() {
	path := "catalog.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	var items []catalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar catálogo: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryUC := usecase.NewCategoryUseCase(postgres.NewCategoryRepository(pool))
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool), nil, 0)
	ledgerUC := inventory.NewLedgerUseCase(postgres.NewTxRunner(pool), postgres.NewStockMovementRepository(pool), nil)

	s := &seeder{categories: categoryUC, products: productUC, ledger: ledgerUC}
	created, err := s.run(ctx, items)
	if err != nil {
		log.Error().Err(err).Int("created", created).Msg("seed interrumpido")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Int("products", created).Str("file", path).Msg("catálogo cargado")
}

type seeder struct {
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	ledger     *inventory.LedgerUseCase
}

// run crea categorías faltantes (por nombre, sin distinguir mayúsculas) y luego los productos.
func (s *seeder) run(ctx context.Context, items []catalogItem) (int, error) {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listar categorías: %w", err)
	}
	byName := make(map[string]int64, len(existing))
	for _, c := range existing {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	created := 0
	for _, it := range items {
		var categoryID *int64
		if name := strings.TrimSpace(it.Category); name != "" {
			id, ok := byName[strings.ToLower(name)]
			if !ok {
				c, err := s.categories.Create(ctx, dto.CategoryRequest{Name: name})
				if err != nil {
					return created, fmt.Errorf("crear categoría %q: %w", name, err)
				}
				id = c.ID
				byName[strings.ToLower(name)] = id
			}
			categoryID = &id
		}

		price := it.Price
		p, err := s.products.Create(ctx, dto.CreateProductRequest{
			Name:        it.Name,
			Price:       &price,
			CategoryID:  categoryID,
			Description: it.Description,
			Barcode:     it.Barcode,
			ImageURL:    it.ImageURL,
		}, nil)
		if err != nil {
			return created, fmt.Errorf("crear producto %q: %w", it.Name, err)
		}
		if it.Stock != 0 {
			if _, err := s.ledger.RecordMovement(ctx, inventory.MovementInput{
				ProductID:      p.ID,
				QuantityChange: it.Stock,
				Reason:         "initial stock",
				Type:           "ADJUST",
			}); err != nil {
				return created, fmt.Errorf("stock inicial %q: %w", it.Name, err)
			}
		}
		created++
	}
	return created, nil
}
