package dto

import "time"

// CreateCategoryRequest entrada para criar categoria.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest entrada para atualizar categoria (patch: só campos presentes).
type UpdateCategoryRequest struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
