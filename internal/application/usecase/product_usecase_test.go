package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/usecase"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de test en memoria para ProductRepository
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	existing, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// El update de catálogo nunca toca el stock.
	stock := existing.CurrentStock
	cp := *p
	cp.CurrentStock = stock
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, newStock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	return nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
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

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AplicaDefaults(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Torta de vainilla",
		Category:     "tortas",
		SalePrice:    decimal.NewFromInt(45),
		CostPrice:    decimal.NewFromInt(20),
		InitialStock: 12,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 12, resp.CurrentStock)
	assert.Equal(t, 5, resp.MinimumStock, "stock_minimo por defecto")
	assert.Equal(t, "unidad", resp.UnitMeasure, "unidad_medida por defecto")
	assert.Equal(t, "activo", resp.Status, "estado por defecto")
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Category: "panes"}},
		{"sin categoria", dto.CreateProductRequest{Name: "Pan"}},
		{"precio negativo", dto.CreateProductRequest{Name: "Pan", Category: "panes", SalePrice: decimal.NewFromInt(-1)}},
		{"stock inicial negativo", dto.CreateProductRequest{Name: "Pan", Category: "panes", InitialStock: -3}},
		{"estado desconocido", dto.CreateProductRequest{Name: "Pan", Category: "panes", Status: "pausado"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// El update de catálogo no puede tocar el stock: ese campo ni siquiera existe
// en el request y el valor persistido no cambia.
func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Milhojas", Category: "postres", InitialStock: 9,
	})
	require.NoError(t, err)

	newName := "Milhojas grande"
	newMin := 3
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:         &newName,
		MinimumStock: &newMin,
	})
	require.NoError(t, err)

	assert.Equal(t, "Milhojas grande", updated.Name)
	assert.Equal(t, 3, updated.MinimumStock)
	assert.Equal(t, 9, updated.CurrentStock, "el stock solo cambia vía movimientos")
	assert.Equal(t, 9, repo.products[created.ID].CurrentStock)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	name := "x"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_PorDefectoSoloActivos(t *testing.T) {
	repo := newMemProductRepo()
	repo.products["a"] = &entity.Product{ID: "a", Name: "Activo", Status: "activo"}
	repo.products["i"] = &entity.Product{ID: "i", Name: "Inactivo", Status: "inactivo"}
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)

	require.Len(t, resp.Products, 1)
	assert.Equal(t, "a", resp.Products[0].ID)
}

func TestProductDelete(t *testing.T) {
	repo := newMemProductRepo()
	repo.products["a"] = &entity.Product{ID: "a", Name: "Borrable", Status: "activo"}
	uc := usecase.NewProductUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), "a"))
	assert.Empty(t, repo.products)

	assert.ErrorIs(t, uc.Delete(context.Background(), "a"), domain.ErrNotFound)
}
