package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// StockMovementRepository define o porto de persistência para StockMovement.
// Movimentos são histórico: só criação e listagem.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetAll() ([]*entity.StockMovement, error)
}
