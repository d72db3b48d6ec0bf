package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: un store en memoria con transacciones simuladas.
// El fakeTxRunner serializa las transacciones con un mutex (como hace el
// bloqueo de fila en PostgreSQL) y restaura un snapshot si fn devuelve error
// (equivalente al Rollback).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []entity.Movement
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product), nextID: 1}
}

func (s *fakeStore) addProduct(p entity.Product) {
	s.products[p.ID] = &p
}

func (s *fakeStore) snapshot() (map[string]*entity.Product, []entity.Movement, int64) {
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		products[id] = &cp
	}
	movements := make([]entity.Movement, len(s.movements))
	copy(movements, s.movements)
	return products, movements, s.nextID
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products, movements, nextID := r.store.snapshot()
	err := fn(&fakeMovementRepo{store: r.store}, &fakeProductRepo{store: r.store})
	if err != nil {
		// Rollback: nada de lo escrito en la transacción sobrevive.
		r.store.products = products
		r.store.movements = movements
		r.store.nextID = nextID
		return err
	}
	return nil
}

// ── Repositorio de productos ──────────────────────────────────────────────────

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, newStock int) error {
	p, ok := r.store.products[id]
	if !ok {
		return nil
	}
	p.CurrentStock = newStock
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.LowStock && p.CurrentStock > p.MinimumStock {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

// ── Repositorio de movimientos ────────────────────────────────────────────────

type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.store.nextID
	r.store.nextID++
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *fakeMovementRepo) detail(m entity.Movement) *entity.MovementDetail {
	d := &entity.MovementDetail{Movement: m}
	if p, ok := r.store.products[m.ProductID]; ok {
		d.ProductName = p.Name
		d.ProductCategory = p.Category
	}
	return d
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id int64) (*entity.MovementDetail, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			return r.detail(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	var list []*entity.MovementDetail
	for _, m := range r.store.movements {
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		list = append(list, r.detail(m))
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	if filter.Limit > 0 && len(list) > filter.Limit {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (r *fakeMovementRepo) SummaryForDay(_ context.Context, day time.Time) ([]repository.KindSummary, error) {
	y, mo, d := day.Date()
	byKind := make(map[string]*repository.KindSummary)
	for _, m := range r.store.movements {
		my, mmo, md := m.CreatedAt.Date()
		if my != y || mmo != mo || md != d {
			continue
		}
		s, ok := byKind[m.Kind]
		if !ok {
			s = &repository.KindSummary{Kind: m.Kind}
			byKind[m.Kind] = s
		}
		s.Count++
		s.TotalQuantity += m.Quantity
	}
	var list []repository.KindSummary
	for _, s := range byKind {
		list = append(list, *s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Kind < list[j].Kind })
	return list, nil
}
