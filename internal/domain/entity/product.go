package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActivo   = "activo"
	ProductStatusInactivo = "inactivo"
)

// Product representa un producto del catálogo de la pastelería.
// CurrentStock es propiedad exclusiva del motor de movimientos: después de la
// creación del producto solo cambia como efecto de un Movement registrado.
type Product struct {
	ID           string
	Name         string
	Description  string
	Category     string
	SalePrice    decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal // precio de costo
	CurrentStock int             // siempre >= 0
	MinimumStock int             // umbral de alerta de stock bajo
	UnitMeasure  string          // unidad, kg, docena, etc.
	ImagePath    string
	Status       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
