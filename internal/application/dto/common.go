package dto

// ErrorResponse cuerpo de error HTTP. Detail solo se llena en errores de subida.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse respuesta de confirmación (update/delete).
type MessageResponse struct {
	Message string `json:"message"`
}
