package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// ProductRepository define o porto de persistência para Product.
// GetForUpdate e UpdateStock existem para uso dentro de transações (baixa de estoque).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	GetLowStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int) error
	Delete(id string) error
}
