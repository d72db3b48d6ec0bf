package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL. Las
// filas de movimientos son inmutables: solo INSERT y SELECT, nunca UPDATE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y rellena m.ID con el id generado (BIGSERIAL).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (
			id_producto, id_usuario, tipo_movimiento, cantidad,
			stock_anterior, stock_nuevo, motivo, observaciones, fecha_movimiento
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.UserID, m.Kind, m.Quantity,
		m.StockBefore, m.StockAfter, m.Reason, m.Notes, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

const movementDetailQuery = `
	SELECT m.id, m.id_producto, m.id_usuario, m.tipo_movimiento, m.cantidad,
	       m.stock_anterior, m.stock_nuevo, m.motivo, m.observaciones, m.fecha_movimiento,
	       p.nombre, p.categoria, u.nombre_completo, u.rol
	FROM movimientos m
	JOIN productos p ON p.id = m.id_producto
	JOIN usuarios u ON u.id = m.id_usuario`

// GetByID obtiene un movimiento con datos de producto y usuario. nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error) {
	m, err := r.scanDetail(r.q.QueryRow(ctx, movementDetailQuery+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// List devuelve movimientos con filtros opcionales, los más recientes primero.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Kind != "" {
		conds = append(conds, "m.tipo_movimiento = "+next(filter.Kind))
	}
	if filter.From != nil {
		conds = append(conds, "m.fecha_movimiento >= "+next(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "m.fecha_movimiento <= "+next(*filter.To))
	}

	query := movementDetailQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY m.fecha_movimiento DESC, m.id DESC"
	if filter.Limit > 0 {
		query += " LIMIT " + next(filter.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movements []*entity.MovementDetail
	for rows.Next() {
		m, err := r.scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	return movements, nil
}

// SummaryForDay agrupa los movimientos de un día calendario por tipo.
func (r *MovementRepo) SummaryForDay(ctx context.Context, day time.Time) ([]repository.KindSummary, error) {
	query := `
		SELECT tipo_movimiento, COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientos
		WHERE fecha_movimiento::date = $1::date
		GROUP BY tipo_movimiento
		ORDER BY tipo_movimiento`
	rows, err := r.q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("resumen por tipo: %w", err)
	}
	defer rows.Close()

	var summary []repository.KindSummary
	for rows.Next() {
		var s repository.KindSummary
		if err := rows.Scan(&s.Kind, &s.Count, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		summary = append(summary, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resumen por tipo: %w", err)
	}
	return summary, nil
}

func (r *MovementRepo) scanDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var m entity.MovementDetail
	err := row.Scan(
		&m.ID, &m.ProductID, &m.UserID, &m.Kind, &m.Quantity,
		&m.StockBefore, &m.StockAfter, &m.Reason, &m.Notes, &m.CreatedAt,
		&m.ProductName, &m.ProductCategory, &m.UserName, &m.UserRole,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
