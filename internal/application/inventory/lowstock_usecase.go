package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	dominv "github.com/donpepe/inventario-api/internal/domain/inventory"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// LowStockUseCase lista los productos activos en o bajo su stock mínimo,
// clasificados por nivel de alerta y ordenados por urgencia.
type LowStockUseCase struct {
	productRepo repository.ProductRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(productRepo repository.ProductRepository) *LowStockUseCase {
	return &LowStockUseCase{productRepo: productRepo}
}

// GetLowStockProducts devuelve los productos con stock bajo: critico primero,
// luego muy_bajo, luego bajo; dentro de cada nivel por unidades faltantes
// descendente (el más deficitario primero).
func (uc *LowStockUseCase) GetLowStockProducts(ctx context.Context) (*dto.LowStockListResponse, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{
		Status:   entity.ProductStatusActivo,
		LowStock: true,
	})
	if err != nil {
		return nil, fmt.Errorf("productos con stock bajo: %w", err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return dominv.LessUrgent(products[i], products[j])
	})

	items := make([]dto.LowStockProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.LowStockProductDTO{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
			UnitMeasure:  p.UnitMeasure,
			SalePrice:    p.SalePrice,
			MissingUnits: p.MinimumStock - p.CurrentStock,
			AlertLevel:   dominv.AlertLevel(p.CurrentStock, p.MinimumStock),
		})
	}
	return &dto.LowStockListResponse{
		Success:  true,
		Total:    len(items),
		Products: items,
	}, nil
}
