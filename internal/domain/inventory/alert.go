package inventory

import "github.com/donpepe/inventario-api/internal/domain/entity"

// Niveles de alerta de stock bajo, del más urgente al menos urgente.
const (
	AlertLevelCritico = "critico"  // stock en cero
	AlertLevelMuyBajo = "muy_bajo" // stock <= 50% del mínimo
	AlertLevelBajo    = "bajo"     // stock <= mínimo
)

// IsLowStock indica si el producto está en o bajo su umbral mínimo.
// Solo aplica a productos activos.
func IsLowStock(p *entity.Product) bool {
	return p.Status == entity.ProductStatusActivo && p.CurrentStock <= p.MinimumStock
}

// AlertLevel clasifica un producto con stock bajo. La comparación con el 50%
// del mínimo se hace en enteros (current*2 <= minimum) para no perder el caso
// límite con mínimos impares: stock 2 con mínimo 5 es muy_bajo (2 <= 2.5).
func AlertLevel(currentStock, minimumStock int) string {
	switch {
	case currentStock == 0:
		return AlertLevelCritico
	case currentStock*2 <= minimumStock:
		return AlertLevelMuyBajo
	default:
		return AlertLevelBajo
	}
}

// alertRank orden de urgencia para ordenar listados (menor = más urgente).
func alertRank(level string) int {
	switch level {
	case AlertLevelCritico:
		return 1
	case AlertLevelMuyBajo:
		return 2
	default:
		return 3
	}
}

// LessUrgent compara dos productos con stock bajo para ordenarlos: primero por
// nivel de alerta y dentro del mismo nivel por unidades faltantes descendente.
func LessUrgent(a, b *entity.Product) bool {
	ra := alertRank(AlertLevel(a.CurrentStock, a.MinimumStock))
	rb := alertRank(AlertLevel(b.CurrentStock, b.MinimumStock))
	if ra != rb {
		return ra < rb
	}
	return (a.MinimumStock - a.CurrentStock) > (b.MinimumStock - b.CurrentStock)
}
