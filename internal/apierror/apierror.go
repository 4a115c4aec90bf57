// Package apierror define los sobres de error que la API devuelve al
// frontend de caja. Los handlers nunca serializan un error de gorm ni un
// pánico crudo hacia el cliente; todo pasa por estas estructuras.
package apierror

// APIError es el cuerpo de toda respuesta 4xx/5xx. El campo detail lleva
// el mensaje en español que la pantalla de caja muestra tal cual.
type APIError struct {
	Detail string `json:"detail"`
}

func New(detalle string) *APIError {
	return &APIError{Detail: detalle}
}

// ValidationError acompaña los 422: detalle general más el mensaje por
// campo que reportó el validador.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Datos invalidos", Fields: fields}
}
