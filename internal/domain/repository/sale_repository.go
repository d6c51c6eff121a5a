package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// SaleRepository define o porto de persistência para Sale.
// Vendas são imutáveis: não há Update nem Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetAll() ([]*entity.Sale, error)
}
