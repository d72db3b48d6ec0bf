package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// Tope de resultados del historial; también es el valor por defecto.
const maxMovementResults = 100

const dateLayout = "2006-01-02"

// MovementQueryUseCase consultas read-only sobre el ledger de movimientos.
// Cada llamada re-consulta el estado actual; no hay cursores ni cachés.
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// ListMovements devuelve el historial más reciente primero. El filtro de tipo
// se valida contra los tres tipos conocidos; las fechas acotan por día
// calendario inclusive (fecha_fin cubre hasta las 23:59:59 de ese día).
func (uc *MovementQueryUseCase) ListMovements(ctx context.Context, in dto.ListMovementsRequest) (*dto.MovementListResponse, error) {
	filter := repository.MovementFilter{Limit: maxMovementResults}

	if in.Kind != "" {
		if !entity.ValidMovementKind(in.Kind) {
			return nil, domain.ErrInvalidInput
		}
		filter.Kind = in.Kind
	}
	if in.From != "" {
		from, err := time.ParseInLocation(dateLayout, in.From, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.ParseInLocation(dateLayout, in.To, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Inclusive: el filtro cubre el día completo.
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &endOfDay
	}
	if in.Limit > 0 && in.Limit < maxMovementResults {
		filter.Limit = in.Limit
	}

	list, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Success:   true,
		Total:     len(items),
		Movements: items,
	}, nil
}

// GetMovement obtiene un movimiento por ID con datos de producto y usuario.
func (uc *MovementQueryUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener movimiento: %w", err)
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// TodaySummary agrupa los movimientos de hoy por tipo (conteo y cantidad).
func (uc *MovementQueryUseCase) TodaySummary(ctx context.Context) (*dto.TodaySummaryResponse, error) {
	summary, err := uc.movRepo.SummaryForDay(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("resumen del día: %w", err)
	}
	items := make([]dto.KindSummaryDTO, 0, len(summary))
	for _, s := range summary {
		items = append(items, dto.KindSummaryDTO{
			Kind:          s.Kind,
			Count:         s.Count,
			TotalQuantity: s.TotalQuantity,
		})
	}
	return &dto.TodaySummaryResponse{Success: true, Summary: items}, nil
}

// ToMovementResponse mapea un movimiento del ledger a su representación de API.
// También lo usan los reportes de historial.
func ToMovementResponse(m *entity.MovementDetail) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		UserID:          m.UserID,
		Kind:            m.Kind,
		Quantity:        m.Quantity,
		StockBefore:     m.StockBefore,
		StockAfter:      m.StockAfter,
		Reason:          m.Reason,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		ProductName:     m.ProductName,
		ProductCategory: m.ProductCategory,
		UserName:        m.UserName,
	}
}
