package repository

import (
	"context"
	"time"

	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// MovementFilter filtros para el historial de movimientos. From/To acotan por
// día calendario inclusive. Limit acota el resultado (más recientes primero).
type MovementFilter struct {
	Kind  string
	From  *time.Time
	To    *time.Time
	Limit int
}

// KindSummary agregado de movimientos por tipo.
type KindSummary struct {
	Kind          string
	Count         int
	TotalQuantity int
}

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. Append-only: no expone update ni delete.
type MovementRepository interface {
	// Create inserta el movimiento y asigna movement.ID (secuencial).
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementDetail, error)
	// SummaryForDay agrupa los movimientos de un día calendario por tipo.
	SummaryForDay(ctx context.Context, day time.Time) ([]KindSummary, error)
}
