package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetAll() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
