package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movimientos.
type RegisterMovementRequest struct {
	ProductID string `json:"id_producto"`
	Kind      string `json:"tipo_movimiento"`
	Quantity  int    `json:"cantidad"`
	Reason    string `json:"motivo,omitempty"`
	Notes     string `json:"observaciones,omitempty"`
}

// MovementCreatedResponse respuesta de un movimiento registrado.
type MovementCreatedResponse struct {
	Success    bool   `json:"success"`
	MovementID int64  `json:"id_movimiento"`
	NewStock   int    `json:"stock_nuevo"`
	Message    string `json:"mensaje"`
}

// ListMovementsRequest query params de GET /api/movimientos.
// Las fechas llegan como "YYYY-MM-DD" y acotan por día calendario inclusive.
type ListMovementsRequest struct {
	Kind  string `query:"tipo"`
	From  string `query:"fecha_inicio"`
	To    string `query:"fecha_fin"`
	Limit int    `query:"limite"`
}

// MovementResponse un movimiento del historial, con datos de producto y usuario.
type MovementResponse struct {
	ID              int64     `json:"id_movimiento"`
	ProductID       string    `json:"id_producto"`
	UserID          string    `json:"id_usuario"`
	Kind            string    `json:"tipo_movimiento"`
	Quantity        int       `json:"cantidad"`
	StockBefore     int       `json:"stock_anterior"`
	StockAfter      int       `json:"stock_nuevo"`
	Reason          string    `json:"motivo,omitempty"`
	Notes           string    `json:"observaciones,omitempty"`
	CreatedAt       time.Time `json:"fecha_movimiento"`
	ProductName     string    `json:"nombre_producto"`
	ProductCategory string    `json:"categoria_producto,omitempty"`
	UserName        string    `json:"nombre_usuario"`
}

// MovementListResponse historial de movimientos.
type MovementListResponse struct {
	Success   bool               `json:"success"`
	Total     int                `json:"total"`
	Movements []MovementResponse `json:"movimientos"`
}

// KindSummaryDTO agregado de movimientos por tipo.
type KindSummaryDTO struct {
	Kind          string `json:"tipo_movimiento"`
	Count         int    `json:"total"`
	TotalQuantity int    `json:"cantidad_total"`
}

// TodaySummaryResponse resumen del día agrupado por tipo de movimiento.
type TodaySummaryResponse struct {
	Success bool             `json:"success"`
	Summary []KindSummaryDTO `json:"resumen"`
}

// LowStockProductDTO producto en o bajo su stock mínimo, clasificado por
// nivel de alerta (critico, muy_bajo, bajo).
type LowStockProductDTO struct {
	ProductID    string          `json:"id_producto"`
	Name         string          `json:"nombre"`
	Category     string          `json:"categoria"`
	CurrentStock int             `json:"stock_actual"`
	MinimumStock int             `json:"stock_minimo"`
	UnitMeasure  string          `json:"unidad_medida"`
	SalePrice    decimal.Decimal `json:"precio_venta"`
	MissingUnits int             `json:"unidades_faltantes"`
	AlertLevel   string          `json:"nivel_alerta"`
}

// LowStockListResponse respuesta de GET /api/dashboard/stock-bajo.
type LowStockListResponse struct {
	Success  bool                 `json:"success"`
	Total    int                  `json:"total"`
	Products []LowStockProductDTO `json:"productos"`
}
