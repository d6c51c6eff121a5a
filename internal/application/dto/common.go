package dto

// SuccessResponse corpo padrão de escrita bem-sucedida.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}
