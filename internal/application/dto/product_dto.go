package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicial se
// acepta solo aquí; después solo cambia vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"nombre" validate:"required,min=1,max=200"`
	Description  string          `json:"descripcion"`
	Category     string          `json:"categoria" validate:"required"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	CostPrice    decimal.Decimal `json:"precio_costo"`
	InitialStock int             `json:"stock_actual"`
	MinimumStock int             `json:"stock_minimo"`
	UnitMeasure  string          `json:"unidad_medida"`
	Status       string          `json:"estado"`
}

// UpdateProductRequest entrada para actualizar un producto. No incluye stock:
// el stock solo se modifica registrando movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"descripcion"`
	Category     *string          `json:"categoria"`
	SalePrice    *decimal.Decimal `json:"precio_venta"`
	CostPrice    *decimal.Decimal `json:"precio_costo"`
	MinimumStock *int             `json:"stock_minimo"`
	UnitMeasure  *string          `json:"unidad_medida"`
	Status       *string          `json:"estado"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id_producto"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Category     string          `json:"categoria"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	CostPrice    decimal.Decimal `json:"precio_costo"`
	CurrentStock int             `json:"stock_actual"`
	MinimumStock int             `json:"stock_minimo"`
	UnitMeasure  string          `json:"unidad_medida"`
	ImagePath    string          `json:"imagen,omitempty"`
	Status       string          `json:"estado"`
	CreatedAt    time.Time       `json:"fecha_creacion"`
	UpdatedAt    time.Time       `json:"fecha_actualizacion"`
}

// ProductListResponse lista de productos con el total encontrado.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Total    int               `json:"total"`
	Products []ProductResponse `json:"productos"`
}
