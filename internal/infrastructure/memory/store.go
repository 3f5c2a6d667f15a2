// Package memory implementa los puertos de repositorio en memoria.
// Se usa en tests y en ejecuciones locales sin PostgreSQL.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-manager/internal/application/inventory"
	"github.com/jhoicas/inventory-manager/internal/domain"
	"github.com/jhoicas/inventory-manager/internal/domain/entity"
	"github.com/jhoicas/inventory-manager/internal/domain/repository"
)

// ErrInjected error genérico para simular fallos del almacenamiento.
var ErrInjected = errors.New("memory: fallo inyectado")

// Store estado compartido por todos los repositorios en memoria.
// Las transacciones (TxRunner) se serializan y hacen rollback restaurando la copia de products y
// movimientos tomada al inicio; escrituras de productos fuera de tx concurrentes con un rollback se pierden.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	products   map[int64]entity.Product
	movements  []entity.StockMovement
	categories map[int64]entity.Category
	users      map[int64]entity.User
	settings   []entity.AppSettings

	nextProduct, nextMovement, nextCategory, nextUser int64

	// Fallos inyectables para tests.
	FailMovementCreate error
	FailAdjustStock    error
	FailStatsValue     error
	FailList           error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		products:   map[int64]entity.Product{},
		categories: map[int64]entity.Category{},
		users:      map[int64]entity.User{},
	}
}

type snapshot struct {
	products                  map[int64]entity.Product
	movements                 []entity.StockMovement
	nextProduct, nextMovement int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	return snapshot{
		products:     products,
		movements:    append([]entity.StockMovement(nil), s.movements...),
		nextProduct:  s.nextProduct,
		nextMovement: s.nextMovement,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.movements = snap.movements
	s.nextProduct, s.nextMovement = snap.nextProduct, snap.nextMovement
}

// SeedSettings inserta una fila de settings.
func (s *Store) SeedSettings(settings map[string]any) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.settings) + 1)
	s.settings = append(s.settings, entity.AppSettings{ID: id, Settings: settings, UpdatedAt: time.Now()})
	return id
}

// Movements copia de todos los movimientos (orden de inserción).
func (s *Store) Movements() []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.StockMovement(nil), s.movements...)
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y deshace sus escrituras si fn falla.
type TxRunner struct{ s *Store }

func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	if err := fn(NewProductRepository(r.s), NewStockMovementRepository(r.s)); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct{ s *Store }

func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailList != nil {
		return nil, r.s.FailList
	}
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetForUpdate el bloqueo lo da TxRunner (una transacción a la vez).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.CategoryID != nil {
		if _, ok := r.s.categories[*p.CategoryID]; !ok {
			return domain.ErrConflict
		}
	}
	r.s.nextProduct++
	now := time.Now()
	p.ID, p.CreatedAt, p.UpdatedAt = r.s.nextProduct, now, now
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.CategoryID != nil {
		if _, ok := r.s.categories[*p.CategoryID]; !ok {
			return domain.ErrConflict
		}
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.movements {
		if m.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepo) AdjustStock(_ context.Context, id int64, delta int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailAdjustStock != nil {
		return 0, r.s.FailAdjustStock
	}
	p, ok := r.s.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return p.Stock, nil
}

// ── Stock movements ──────────────────────────────────────────────────────────

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

type StockMovementRepo struct{ s *Store }

func NewStockMovementRepository(s *Store) *StockMovementRepo { return &StockMovementRepo{s: s} }

func (r *StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailMovementCreate != nil {
		return r.s.FailMovementCreate
	}
	if _, ok := r.s.products[m.ProductID]; !ok {
		return domain.ErrNotFound
	}
	r.s.nextMovement++
	m.ID, m.CreatedAt = r.s.nextMovement, time.Now()
	r.s.movements = append(r.s.movements, *m)
	return nil
}

// ListByProduct más recientes primero (por id, que crece con created_at).
func (r *StockMovementRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if m := r.s.movements[i]; m.ProductID == productID {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *StockMovementRepo) ListWithProduct(_ context.Context) ([]*entity.MovementWithProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.MovementWithProduct, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		p := r.s.products[m.ProductID]
		out = append(out, &entity.MovementWithProduct{StockMovement: m, ProductName: p.Name, ProductPrice: p.Price})
	}
	return out, nil
}

// ── Categories ───────────────────────────────────────────────────────────────

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type CategoryRepo struct{ s *Store }

func NewCategoryRepository(s *Store) *CategoryRepo { return &CategoryRepo{s: s} }

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCategory++
	now := time.Now()
	c.ID, c.CreatedAt, c.UpdatedAt = r.s.nextCategory, now, now
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = time.Now()
	r.s.categories[c.ID] = *c
	return nil
}

// Delete deja en nil el category_id de los productos asociados.
func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	for pid, p := range r.s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			r.s.products[pid] = p
		}
	}
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

type UserRepo struct{ s *Store }

func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.nextUser++
	now := time.Now()
	u.ID, u.CreatedAt, u.UpdatedAt = r.s.nextUser, now, now
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return nil
}

// ── App settings ─────────────────────────────────────────────────────────────

var _ repository.AppSettingsRepository = (*AppSettingsRepo)(nil)

type AppSettingsRepo struct{ s *Store }

func NewAppSettingsRepository(s *Store) *AppSettingsRepo { return &AppSettingsRepo{s: s} }

func (r *AppSettingsRepo) Get(_ context.Context) (*entity.AppSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.settings) == 0 {
		return nil, nil
	}
	s := r.s.settings[0]
	return &s, nil
}

func (r *AppSettingsRepo) Replace(_ context.Context, id int64, settings map[string]any) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.settings {
		if r.s.settings[i].ID == id {
			r.s.settings[i].Settings = settings
			r.s.settings[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Stats ────────────────────────────────────────────────────────────────────

var _ repository.StatsRepository = (*StatsRepo)(nil)

type StatsRepo struct{ s *Store }

func NewStatsRepository(s *Store) *StatsRepo { return &StatsRepo{s: s} }

func (r *StatsRepo) CountProducts(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.products)), nil
}

func (r *StatsRepo) TotalInventoryValue(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailStatsValue != nil {
		return decimal.Zero, r.s.FailStatsValue
	}
	total := decimal.Zero
	for _, p := range r.s.products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total, nil
}

func (r *StatsRepo) CountLowStock(_ context.Context, threshold int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.products {
		if p.Stock < threshold {
			n++
		}
	}
	return n, nil
}
