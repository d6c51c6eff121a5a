package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// TableRepository define o porto de persistência para Table.
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	GetAll() ([]*entity.Table, error)
	Update(table *entity.Table) error
	Delete(id string) error
}
