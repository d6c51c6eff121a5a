package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
)

// OpenCommandRequest entrada para abrir comanda em uma mesa.
type OpenCommandRequest struct {
	TableID string `json:"tableId"`
}

// AddItemRequest entrada para lançar item na comanda.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCommandRequest entrada para patch de comanda aberta.
// Quando Items vem presente, subtotais e total são recalculados no servidor.
type UpdateCommandRequest struct {
	ID    string               `json:"id"`
	Items []entity.CommandItem `json:"items"`
}

// FinalizeCommandRequest entrada para finalizar a comanda em venda.
type FinalizeCommandRequest struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
}

// CommandResponse saída de uma comanda.
type CommandResponse struct {
	ID        string               `json:"id"`
	TableID   string               `json:"tableId"`
	TableName string               `json:"tableName"`
	Items     []entity.CommandItem `json:"items"`
	Total     decimal.Decimal      `json:"total"`
	Status    string               `json:"status"`
	OpenedAt  time.Time            `json:"openedAt"`
	ClosedAt  *time.Time           `json:"closedAt,omitempty"`
}
