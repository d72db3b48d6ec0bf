package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleAlmacenero = "almacenero"
)

// Estados válidos para User.
const (
	UserStatusActivo   = "activo"
	UserStatusInactivo = "inactivo"
)

// User representa un usuario del sistema (personal de la pastelería).
type User struct {
	ID           string
	Username     string
	FullName     string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // admin, almacenero
	Status       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
