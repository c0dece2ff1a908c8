package schemas

type ApiResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// FieldError is one failed rule of a submitted record.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
