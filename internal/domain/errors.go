package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que una salida dejaría el stock en negativo.
// Lleva el stock actual para que el caller pueda informarlo sin otra consulta.
// errors.Is(err, ErrInsufficientStock) es verdadero para este error.
type InsufficientStockError struct {
	Current int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: %d", e.Current)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
