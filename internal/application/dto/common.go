package dto

// ErrorResponse cuerpo de error HTTP. El cliente distingue errores por el
// campo success y usa code para lógica de UI.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"mensaje"`
}

// NewError construye un ErrorResponse con success=false.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
