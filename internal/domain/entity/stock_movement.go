package entity

import "time"

// Tipo de movimento de estoque. Enumeração fechada.
type MovementType string

const (
	MovementIn         MovementType = "in"         // entrada: soma Quantity ao estoque
	MovementOut        MovementType = "out"        // saída: subtrai Quantity do estoque
	MovementAdjustment MovementType = "adjustment" // ajuste: define o estoque absoluto em Quantity
	MovementSale       MovementType = "sale"       // baixa automática emitida pela finalização de comanda
)

// Valid informa se o tipo é um dos aceitos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment, MovementSale:
		return true
	}
	return false
}

// StockMovement registra uma alteração de estoque de um produto, com motivo.
// ProductName é snapshot do momento do registro.
type StockMovement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        MovementType
	Quantity    int
	Reason      string
	CreatedAt   time.Time
}
