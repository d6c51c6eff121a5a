package dto

import "time"

// CreateTableRequest entrada para criar mesa.
type CreateTableRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateTableRequest entrada para atualizar mesa (patch: só campos presentes).
type UpdateTableRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// TableResponse saída de uma mesa.
type TableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
