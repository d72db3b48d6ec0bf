// Package inventory implementa el motor de movimientos de stock: registro
// transaccional de entradas, salidas y ajustes, consultas del historial y
// clasificación de stock bajo.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	dominv "github.com/donpepe/inventario-api/internal/domain/inventory"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es la única autoridad para cambiar el stock de un producto: cada cambio
// queda registrado como un Movement inmutable antes de reflejarse en el
// contador stock_actual.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	UserID    string
	Kind      string // entrada, salida, ajuste
	Quantity  int    // > 0
	Reason    string
	Notes     string
}

// RegisterMovement valida la solicitud, abre una transacción, bloquea la fila
// del producto, calcula el stock resultante, inserta el movimiento con los
// snapshots stock_anterior/stock_nuevo y fija el stock del producto. Dos
// llamadas concurrentes sobre el mismo producto se serializan por el bloqueo
// de fila: la segunda observa el stock ya commiteado por la primera.
//
// Errores: domain.ErrInvalidInput (tipo o cantidad inválidos),
// domain.ErrNotFound (producto inexistente), domain.InsufficientStockError
// (salida que dejaría el stock en negativo; nada se persiste).
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*dto.MovementCreatedResponse, error) {
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementKind(input.Kind) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: serializa escritores concurrentes
		// y garantiza que stock_anterior es el valor commiteado vigente.
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		stockBefore := product.CurrentStock
		stockAfter, err := dominv.NextStock(input.Kind, stockBefore, input.Quantity)
		if err != nil {
			return err
		}

		created = entity.Movement{
			ProductID:   input.ProductID,
			UserID:      input.UserID,
			Kind:        input.Kind,
			Quantity:    input.Quantity,
			StockBefore: stockBefore,
			StockAfter:  stockAfter,
			Reason:      strings.TrimSpace(input.Reason),
			Notes:       strings.TrimSpace(input.Notes),
			CreatedAt:   time.Now(),
		}
		if err := movRepo.Create(ctx, &created); err != nil {
			return err
		}
		return productRepo.UpdateStock(ctx, input.ProductID, stockAfter)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementCreatedResponse{
		Success:    true,
		MovementID: created.ID,
		NewStock:   created.StockAfter,
		Message:    "Movimiento registrado",
	}, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementCreatedResponse, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		UserID:    userID,
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
	})
}
