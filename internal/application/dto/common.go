package dto

// ErrorResponse cuerpo de error para salidas JSON cuando no hay documento (p. ej. protocolo inexistente).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
