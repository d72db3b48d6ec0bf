package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"nombre_usuario" validate:"required"`
	Password string `json:"contrasena" validate:"required"`
}

// LoginResponse token JWT más los datos visibles del usuario.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"usuario"`
	Message string       `json:"mensaje"`
}

// RegisterRequest body para POST /api/auth/register (solo admin).
type RegisterRequest struct {
	Username string `json:"nombre_usuario" validate:"required,min=3,max=50"`
	Password string `json:"contrasena" validate:"required,min=8"`
	FullName string `json:"nombre_completo"`
	Email    string `json:"correo"`
	Role     string `json:"rol"` // admin, almacenero
}

// UserResponse salida de un usuario (nunca incluye el hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id_usuario"`
	Username  string    `json:"nombre_usuario"`
	FullName  string    `json:"nombre_completo"`
	Email     string    `json:"correo"`
	Role      string    `json:"rol"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"fecha_creacion"`
}
