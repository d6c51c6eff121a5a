package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto vendável do bar.
// CategoryName é um snapshot do momento do cadastro: não acompanha renomeações
// posteriores da categoria. Estoque muda apenas via movimentos e finalização de comanda.
type Product struct {
	ID            string
	Name          string
	CategoryID    string
	CategoryName  string
	Price         decimal.Decimal // preço de venda unitário
	StockQuantity int
	MinStockAlert int // limiar de alerta de estoque baixo
	CreatedAt     time.Time
}

// LowStock indica se o produto está no limiar de alerta ou abaixo dele.
func (p *Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockAlert
}
