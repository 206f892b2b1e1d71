package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta con solo un mensaje (confirmaciones, listados vacíos).
type MessageResponse struct {
	Message string `json:"message"`
}
