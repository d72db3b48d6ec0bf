package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryInventory inventario agregado de una categoría.
type CategoryInventory struct {
	Category      string
	TotalProducts int
	TotalStock    int
	TotalValue    decimal.Decimal // stock_actual * precio_venta
}

// CategoryValue valoración del inventario de una categoría a costo y a venta.
type CategoryValue struct {
	Category        string
	TotalProducts   int
	TotalStock      int
	CostValue       decimal.Decimal
	SaleValue       decimal.Decimal
	PotentialProfit decimal.Decimal
}

// ProductActivity actividad de movimientos de un producto.
type ProductActivity struct {
	ProductName   string
	Category      string
	MovementCount int
	TotalQuantity int
}

// DailyKindSummary agregado de movimientos por día y tipo.
type DailyKindSummary struct {
	Day           time.Time
	Kind          string
	Count         int
	TotalQuantity int
}

// IdleProduct producto sin movimientos recientes. LastMovement es nil cuando
// el producto nunca registró un movimiento.
type IdleProduct struct {
	ProductID    string
	ProductName  string
	Category     string
	CurrentStock int
	SalePrice    decimal.Decimal
	LastMovement *time.Time
	IdleDays     *int
}

// DashboardRepository consultas read-only para las estadísticas del panel.
type DashboardRepository interface {
	CountActiveProducts(ctx context.Context) (int, error)
	// InventoryValue suma stock_actual * precio_venta de los productos activos.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	CountLowStock(ctx context.Context) (int, error)
	CountMovementsOn(ctx context.Context, day time.Time) (int, error)
	InventoryByCategory(ctx context.Context) ([]CategoryInventory, error)
	MostMovedProducts(ctx context.Context, since time.Time, limit int) ([]ProductActivity, error)
	MovementsByKind(ctx context.Context, since time.Time) ([]KindSummary, error)
	DailySummary(ctx context.Context, since time.Time) ([]DailyKindSummary, error)
	ProductsWithoutMovement(ctx context.Context, minIdleDays int) ([]IdleProduct, error)
	ValueByCategory(ctx context.Context) ([]CategoryValue, error)
}
