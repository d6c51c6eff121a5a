package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
)

// SaleResponse saída de uma venda.
type SaleResponse struct {
	ID            string               `json:"id"`
	CommandID     string               `json:"commandId"`
	TableID       string               `json:"tableId"`
	TableName     string               `json:"tableName"`
	Items         []entity.CommandItem `json:"items"`
	Total         decimal.Decimal      `json:"total"`
	PaymentMethod string               `json:"paymentMethod"`
	CreatedAt     time.Time            `json:"createdAt"`
}
