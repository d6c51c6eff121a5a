package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para produtos. Estoque muda apenas via
// movimentos e finalização de comanda, nunca por update direto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create cria um produto com snapshot do nome da categoria.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.StockQuantity < 0 || in.MinStockAlert < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		MinStockAlert: in.MinStockAlert,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetAll lista os produtos ordenados por nome.
func (uc *ProductUseCase) GetAll() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetLowStock lista produtos no limiar de alerta ou abaixo dele.
func (uc *ProductUseCase) GetLowStock() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.GetLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update aplica patch em um produto (só campos presentes). Trocar a categoria
// refaz o snapshot do nome; renomear a categoria depois não refaz.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinStockAlert != nil {
		if *in.MinStockAlert < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockAlert = *in.MinStockAlert
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete remove um produto. Movimentos ligados caem pelo CASCADE do schema.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinStockAlert: p.MinStockAlert,
		CreatedAt:     p.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
