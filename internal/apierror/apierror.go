// Package apierror holds the error envelopes written to API clients.
package apierror

// Messages shared by several handlers.
const (
	MsgInternal     = "Error interno del servidor"
	MsgValidation   = "Error de validacion"
	MsgEmptyPatch   = "No hay datos para actualizar"
	MsgUnauthorized = "No se pudieron validar las credenciales"
	MsgTooMany      = "Demasiadas solicitudes, intente mas tarde"
)

// APIError is the body of every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError reports field-level problems with a request body.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: MsgValidation, Fields: fields}
}
