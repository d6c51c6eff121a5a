package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forma de pagamento de uma venda. Enumeração fechada: qualquer outro valor é rejeitado.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// Valid informa se a forma de pagamento é uma das aceitas.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}
	return false
}

// Sale é o registro imutável criado na finalização de uma comanda.
// Items é uma cópia congelada dos itens da comanda, não uma referência viva:
// mutações posteriores de produto ou comanda nunca alteram vendas históricas.
type Sale struct {
	ID            string
	CommandID     string
	TableID       string
	TableName     string
	Items         []CommandItem
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}
