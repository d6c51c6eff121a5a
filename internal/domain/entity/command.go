package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma comanda. Fechada é terminal: não reabre nem muda.
type CommandStatus string

const (
	CommandOpen   CommandStatus = "open"
	CommandClosed CommandStatus = "closed"
)

// CommandItem é um item lançado na comanda. ProductName e UnitPrice são
// snapshots do momento do lançamento: alterações posteriores no produto não
// mudam itens já lançados nem vendas históricas.
type CommandItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	AddedAt     time.Time       `json:"addedAt"`
}

// Command é a comanda aberta de uma mesa, acumulando itens até ser finalizada
// em venda. Os itens pertencem à comanda (persistidos como blob JSON na própria
// linha) e Total é sempre a soma dos subtotais.
type Command struct {
	ID        string
	TableID   string
	TableName string // snapshot do nome da mesa na abertura
	Items     []CommandItem
	Total     decimal.Decimal
	Status    CommandStatus
	OpenedAt  time.Time
	ClosedAt  *time.Time
}

// ComputeTotal recalcula o total como a soma dos subtotais dos itens.
func (c *Command) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}
