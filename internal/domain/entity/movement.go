package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementKindEntrada = "entrada" // suma al stock
	MovementKindSalida  = "salida"  // resta del stock (nunca deja negativo)
	MovementKindAjuste  = "ajuste"  // fija el stock en un valor absoluto
)

// ValidMovementKind indica si kind es uno de los tres tipos soportados.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementKindEntrada, MovementKindSalida, MovementKindAjuste:
		return true
	}
	return false
}

// Movement es un registro inmutable de un cambio de stock. El ID es secuencial
// (BIGSERIAL) y por tanto refleja el orden de creación. Una vez insertado
// nunca se actualiza ni se borra: el ledger es append-only.
type Movement struct {
	ID          int64
	ProductID   string
	UserID      string
	Kind        string // entrada, salida, ajuste
	Quantity    int    // > 0 tal como fue solicitado
	StockBefore int    // snapshot del stock al momento del movimiento
	StockAfter  int    // determinado por StockBefore, Kind y Quantity
	Reason      string // motivo libre, opcional
	Notes       string // observaciones, opcional
	CreatedAt   time.Time
}

// MovementDetail es un Movement enriquecido con los datos de producto y
// usuario que los listados del historial muestran (JOIN en la consulta).
type MovementDetail struct {
	Movement
	ProductName     string
	ProductCategory string
	UserName        string
	UserRole        string
}
