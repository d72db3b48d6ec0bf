package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/estadisticas: KPIs
// generales más los agregados para los gráficos del panel.
type DashboardStatsDTO struct {
	Success             bool                   `json:"success"`
	TotalProducts       int                    `json:"total_productos"`
	InventoryValue      decimal.Decimal        `json:"valor_inventario"`
	LowStockCount       int                    `json:"productos_stock_bajo"`
	MovementsToday      int                    `json:"movimientos_hoy"`
	InventoryByCategory []CategoryInventoryDTO `json:"inventario_por_categoria"`
	MostMovedProducts   []ProductActivityDTO   `json:"productos_mas_movidos"`
	MovementsByKind     []KindSummaryDTO       `json:"movimientos_por_tipo"`
}

// CategoryInventoryDTO inventario agregado de una categoría.
type CategoryInventoryDTO struct {
	Category      string          `json:"categoria"`
	TotalProducts int             `json:"total_productos"`
	TotalStock    int             `json:"total_stock"`
	TotalValue    decimal.Decimal `json:"valor_total"`
}

// ProductActivityDTO producto con su volumen de movimientos recientes.
type ProductActivityDTO struct {
	Name          string `json:"nombre"`
	Category      string `json:"categoria"`
	MovementCount int    `json:"total_movimientos"`
	TotalQuantity int    `json:"cantidad_total"`
}

// DailySummaryDTO agregado de movimientos de un día por tipo.
type DailySummaryDTO struct {
	Day           string `json:"fecha"` // YYYY-MM-DD
	Kind          string `json:"tipo_movimiento"`
	Count         int    `json:"total_movimientos"`
	TotalQuantity int    `json:"cantidad_total"`
}

// WeeklySummaryResponse respuesta de GET /api/dashboard/resumen-semanal.
type WeeklySummaryResponse struct {
	Success bool              `json:"success"`
	Summary []DailySummaryDTO `json:"resumen"`
}

// IdleProductDTO producto sin movimientos recientes.
type IdleProductDTO struct {
	ProductID    string          `json:"id_producto"`
	Name         string          `json:"nombre"`
	Category     string          `json:"categoria"`
	CurrentStock int             `json:"stock_actual"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	LastMovement *time.Time      `json:"ultimo_movimiento"`
	IdleDays     *int            `json:"dias_sin_movimiento"`
}

// IdleProductsResponse respuesta de GET /api/dashboard/productos-sin-movimiento.
type IdleProductsResponse struct {
	Success  bool             `json:"success"`
	Total    int              `json:"total"`
	DaysUsed int              `json:"dias_filtro"`
	Products []IdleProductDTO `json:"productos"`
}

// CategoryValueDTO valoración del inventario de una categoría.
type CategoryValueDTO struct {
	Category        string          `json:"categoria"`
	TotalProducts   int             `json:"total_productos"`
	TotalStock      int             `json:"stock_total"`
	CostValue       decimal.Decimal `json:"valor_costo"`
	SaleValue       decimal.Decimal `json:"valor_venta"`
	PotentialProfit decimal.Decimal `json:"ganancia_potencial"`
	MarginPct       decimal.Decimal `json:"margen_porcentaje"`
}

// CategoryValueResponse respuesta de GET /api/dashboard/valor-por-categoria.
type CategoryValueResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryValueDTO `json:"categorias"`
}
