package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar produto.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	CategoryID    string          `json:"categoryId"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	MinStockAlert int             `json:"minStockAlert"`
}

// UpdateProductRequest entrada para atualizar produto (patch: só campos presentes).
// Estoque não é atualizável por aqui: muda via movimentos e finalização.
type UpdateProductRequest struct {
	ID            string           `json:"id"`
	Name          *string          `json:"name"`
	CategoryID    *string          `json:"categoryId"`
	Price         *decimal.Decimal `json:"price"`
	MinStockAlert *int             `json:"minStockAlert"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	MinStockAlert int             `json:"minStockAlert"`
	CreatedAt     time.Time       `json:"createdAt"`
}
