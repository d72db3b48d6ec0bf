package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donpepe/inventario-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas del panel de control. Solo lectura, por
// lo que va directo al pool, nunca dentro de una transacción.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountActiveProducts cuenta los productos activos.
func (r *DashboardRepo) CountActiveProducts(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE estado = 'activo'`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return n, nil
}

// InventoryValue valora el inventario activo a precio de venta.
func (r *DashboardRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(stock_actual * precio_venta), 0)
		FROM productos WHERE estado = 'activo'`,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inventario: %w", err)
	}
	return v, nil
}

// CountLowStock cuenta los productos activos en o bajo su stock mínimo.
func (r *DashboardRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM productos
		WHERE estado = 'activo' AND stock_actual <= stock_minimo`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock bajo: %w", err)
	}
	return n, nil
}

// CountMovementsOn cuenta los movimientos de un día calendario.
func (r *DashboardRepo) CountMovementsOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM movimientos
		WHERE fecha_movimiento::date = $1::date`, day,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimientos del día: %w", err)
	}
	return n, nil
}

// InventoryByCategory agrega productos, stock y valor por categoría.
func (r *DashboardRepo) InventoryByCategory(ctx context.Context) ([]repository.CategoryInventory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT categoria, COUNT(*), COALESCE(SUM(stock_actual), 0),
		       COALESCE(SUM(stock_actual * precio_venta), 0)
		FROM productos
		WHERE estado = 'activo'
		GROUP BY categoria
		ORDER BY categoria`)
	if err != nil {
		return nil, fmt.Errorf("inventario por categoría: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryInventory
	for rows.Next() {
		var c repository.CategoryInventory
		if err := rows.Scan(&c.Category, &c.TotalProducts, &c.TotalStock, &c.TotalValue); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventario por categoría: %w", err)
	}
	return list, nil
}

// MostMovedProducts lista los productos con más movimientos desde `since`.
func (r *DashboardRepo) MostMovedProducts(ctx context.Context, since time.Time, limit int) ([]repository.ProductActivity, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.nombre, p.categoria, COUNT(m.id), COALESCE(SUM(m.cantidad), 0)
		FROM movimientos m
		JOIN productos p ON p.id = m.id_producto
		WHERE m.fecha_movimiento >= $1
		GROUP BY p.id, p.nombre, p.categoria
		ORDER BY COUNT(m.id) DESC
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("productos más movidos: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductActivity
	for rows.Next() {
		var p repository.ProductActivity
		if err := rows.Scan(&p.ProductName, &p.Category, &p.MovementCount, &p.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("productos más movidos: %w", err)
	}
	return list, nil
}

// MovementsByKind agrega los movimientos desde `since` por tipo.
func (r *DashboardRepo) MovementsByKind(ctx context.Context, since time.Time) ([]repository.KindSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT tipo_movimiento, COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY tipo_movimiento
		ORDER BY tipo_movimiento`, since)
	if err != nil {
		return nil, fmt.Errorf("movimientos por tipo: %w", err)
	}
	defer rows.Close()

	var list []repository.KindSummary
	for rows.Next() {
		var s repository.KindSummary
		if err := rows.Scan(&s.Kind, &s.Count, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("movimientos por tipo: %w", err)
	}
	return list, nil
}

// DailySummary agrega los movimientos desde `since` por día y tipo.
func (r *DashboardRepo) DailySummary(ctx context.Context, since time.Time) ([]repository.DailyKindSummary, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date_trunc('day', fecha_movimiento) AS dia, tipo_movimiento,
		       COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY dia, tipo_movimiento
		ORDER BY dia DESC, tipo_movimiento`, since)
	if err != nil {
		return nil, fmt.Errorf("resumen diario: %w", err)
	}
	defer rows.Close()

	var list []repository.DailyKindSummary
	for rows.Next() {
		var d repository.DailyKindSummary
		if err := rows.Scan(&d.Day, &d.Kind, &d.Count, &d.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan resumen diario: %w", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resumen diario: %w", err)
	}
	return list, nil
}

// ProductsWithoutMovement lista productos activos sin movimientos en los
// últimos minIdleDays días, incluidos los que nunca tuvieron movimiento.
func (r *DashboardRepo) ProductsWithoutMovement(ctx context.Context, minIdleDays int) ([]repository.IdleProduct, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.nombre, p.categoria, p.stock_actual, p.precio_venta,
		       MAX(m.fecha_movimiento) AS ultimo,
		       CASE WHEN MAX(m.fecha_movimiento) IS NULL THEN NULL
		            ELSE EXTRACT(DAY FROM now() - MAX(m.fecha_movimiento))::int
		       END AS dias
		FROM productos p
		LEFT JOIN movimientos m ON m.id_producto = p.id
		WHERE p.estado = 'activo'
		GROUP BY p.id, p.nombre, p.categoria, p.stock_actual, p.precio_venta
		HAVING MAX(m.fecha_movimiento) IS NULL
		    OR MAX(m.fecha_movimiento) < now() - make_interval(days => $1)
		ORDER BY ultimo ASC NULLS FIRST`, minIdleDays)
	if err != nil {
		return nil, fmt.Errorf("productos sin movimiento: %w", err)
	}
	defer rows.Close()

	var list []repository.IdleProduct
	for rows.Next() {
		var p repository.IdleProduct
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Category, &p.CurrentStock,
			&p.SalePrice, &p.LastMovement, &p.IdleDays); err != nil {
			return nil, fmt.Errorf("scan producto sin movimiento: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("productos sin movimiento: %w", err)
	}
	return list, nil
}

// ValueByCategory valora el inventario activo por categoría a costo y a venta.
func (r *DashboardRepo) ValueByCategory(ctx context.Context) ([]repository.CategoryValue, error) {
	rows, err := r.q.Query(ctx, `
		SELECT categoria, COUNT(*), COALESCE(SUM(stock_actual), 0),
		       COALESCE(SUM(stock_actual * precio_costo), 0),
		       COALESCE(SUM(stock_actual * precio_venta), 0),
		       COALESCE(SUM(stock_actual * (precio_venta - precio_costo)), 0)
		FROM productos
		WHERE estado = 'activo'
		GROUP BY categoria
		ORDER BY SUM(stock_actual * precio_venta) DESC`)
	if err != nil {
		return nil, fmt.Errorf("valor por categoría: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoryValue
	for rows.Next() {
		var c repository.CategoryValue
		if err := rows.Scan(&c.Category, &c.TotalProducts, &c.TotalStock,
			&c.CostValue, &c.SaleValue, &c.PotentialProfit); err != nil {
			return nil, fmt.Errorf("scan valor categoría: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("valor por categoría: %w", err)
	}
	return list, nil
}
