// Package inventory contiene las reglas puras del motor de stock: la regla de
// transición que determina el stock resultante de un movimiento y la
// clasificación de alertas de stock bajo. Sin I/O ni dependencias externas.
package inventory

import (
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// NextStock aplica la regla de transición de stock:
//
//	entrada → before + quantity
//	salida  → before - quantity (rechazado si queda negativo)
//	ajuste  → quantity (valor absoluto, no relativo)
//
// quantity debe ser > 0. Una salida que dejaría el stock en negativo retorna
// InsufficientStockError con el stock actual; el caller no debe persistir nada.
func NextStock(kind string, before, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	switch kind {
	case entity.MovementKindEntrada:
		return before + quantity, nil
	case entity.MovementKindSalida:
		after := before - quantity
		if after < 0 {
			return 0, &domain.InsufficientStockError{Current: before}
		}
		return after, nil
	case entity.MovementKindAjuste:
		return quantity, nil
	}
	return 0, domain.ErrInvalidInput
}
