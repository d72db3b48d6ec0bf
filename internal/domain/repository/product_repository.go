package repository

import (
	"context"

	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	Search   string // busca en nombre y descripción
	Category string
	Status   string // vacío = activo
	LowStock bool   // solo productos con stock_actual <= stock_minimo
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija stock_actual. Uso exclusivo del motor de movimientos.
	UpdateStock(ctx context.Context, id string, newStock int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
