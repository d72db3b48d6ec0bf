package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// Ventanas de tiempo de los widgets del panel.
const (
	mostMovedWindowDays = 30
	mostMovedLimit      = 5
	byKindWindowDays    = 7
	weeklyWindowDays    = 7
	defaultIdleDays     = 30
)

// DashboardUseCase agrega las estadísticas del panel de control.
//
// Fuente de datos: DashboardRepository (consultas read-only sobre el pool).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetStats construye el DashboardStatsDTO. Las cuatro métricas escalares se
// consultan en paralelo; los tres agregados para gráficos, en otra tanda.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	type countResult struct {
		n   int
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}

	productsCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	lowStockCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountActiveProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.repo.InventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.repo.CountLowStock(ctx)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountMovementsOn(ctx, now)
		todayCh <- countResult{n, err}
	}()

	products := <-productsCh
	value := <-valueCh
	lowStock := <-lowStockCh
	today := <-todayCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", today.err)
	}

	byCategory, err := uc.repo.InventoryByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: inventario por categoría: %w", err)
	}
	mostMoved, err := uc.repo.MostMovedProducts(ctx, now.AddDate(0, 0, -mostMovedWindowDays), mostMovedLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos más movidos: %w", err)
	}
	byKind, err := uc.repo.MovementsByKind(ctx, now.AddDate(0, 0, -byKindWindowDays))
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos por tipo: %w", err)
	}

	stats := &dto.DashboardStatsDTO{
		Success:             true,
		TotalProducts:       products.n,
		InventoryValue:      value.v.Round(2),
		LowStockCount:       lowStock.n,
		MovementsToday:      today.n,
		InventoryByCategory: make([]dto.CategoryInventoryDTO, 0, len(byCategory)),
		MostMovedProducts:   make([]dto.ProductActivityDTO, 0, len(mostMoved)),
		MovementsByKind:     make([]dto.KindSummaryDTO, 0, len(byKind)),
	}
	for _, c := range byCategory {
		stats.InventoryByCategory = append(stats.InventoryByCategory, dto.CategoryInventoryDTO{
			Category:      c.Category,
			TotalProducts: c.TotalProducts,
			TotalStock:    c.TotalStock,
			TotalValue:    c.TotalValue.Round(2),
		})
	}
	for _, p := range mostMoved {
		stats.MostMovedProducts = append(stats.MostMovedProducts, dto.ProductActivityDTO{
			Name:          p.ProductName,
			Category:      p.Category,
			MovementCount: p.MovementCount,
			TotalQuantity: p.TotalQuantity,
		})
	}
	for _, k := range byKind {
		stats.MovementsByKind = append(stats.MovementsByKind, dto.KindSummaryDTO{
			Kind:          k.Kind,
			Count:         k.Count,
			TotalQuantity: k.TotalQuantity,
		})
	}
	return stats, nil
}

// GetWeeklySummary agrega los movimientos de los últimos 7 días por día y tipo.
func (uc *DashboardUseCase) GetWeeklySummary(ctx context.Context) (*dto.WeeklySummaryResponse, error) {
	list, err := uc.repo.DailySummary(ctx, time.Now().AddDate(0, 0, -weeklyWindowDays))
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen semanal: %w", err)
	}
	items := make([]dto.DailySummaryDTO, 0, len(list))
	for _, d := range list {
		items = append(items, dto.DailySummaryDTO{
			Day:           d.Day.Format("2006-01-02"),
			Kind:          d.Kind,
			Count:         d.Count,
			TotalQuantity: d.TotalQuantity,
		})
	}
	return &dto.WeeklySummaryResponse{Success: true, Summary: items}, nil
}

// GetIdleProducts lista los productos activos sin movimientos en los últimos
// `days` días (o sin movimientos registrados). days <= 0 usa el valor por defecto.
func (uc *DashboardUseCase) GetIdleProducts(ctx context.Context, days int) (*dto.IdleProductsResponse, error) {
	if days <= 0 {
		days = defaultIdleDays
	}
	list, err := uc.repo.ProductsWithoutMovement(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos sin movimiento: %w", err)
	}
	items := make([]dto.IdleProductDTO, 0, len(list))
	for _, p := range list {
		items = append(items, dto.IdleProductDTO{
			ProductID:    p.ProductID,
			Name:         p.ProductName,
			Category:     p.Category,
			CurrentStock: p.CurrentStock,
			SalePrice:    p.SalePrice,
			LastMovement: p.LastMovement,
			IdleDays:     p.IdleDays,
		})
	}
	return &dto.IdleProductsResponse{
		Success:  true,
		Total:    len(items),
		DaysUsed: days,
		Products: items,
	}, nil
}

// GetValueByCategory valora el inventario por categoría a costo y a venta.
func (uc *DashboardUseCase) GetValueByCategory(ctx context.Context) (*dto.CategoryValueResponse, error) {
	list, err := uc.repo.ValueByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: valor por categoría: %w", err)
	}
	hundred := decimal.NewFromInt(100)
	items := make([]dto.CategoryValueDTO, 0, len(list))
	for _, c := range list {
		marginPct := decimal.Zero
		if c.CostValue.GreaterThan(decimal.Zero) {
			marginPct = c.PotentialProfit.Div(c.CostValue).Mul(hundred).Round(2)
		}
		items = append(items, dto.CategoryValueDTO{
			Category:        c.Category,
			TotalProducts:   c.TotalProducts,
			TotalStock:      c.TotalStock,
			CostValue:       c.CostValue.Round(2),
			SaleValue:       c.SaleValue.Round(2),
			PotentialProfit: c.PotentialProfit.Round(2),
			MarginPct:       marginPct,
		})
	}
	return &dto.CategoryValueResponse{Success: true, Categories: items}, nil
}
