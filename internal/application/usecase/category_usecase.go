package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorias.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create cria uma categoria. Nome é obrigatório.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetAll lista as categorias ordenadas por nome.
func (uc *CategoryUseCase) GetAll() ([]*dto.CategoryResponse, error) {
	categories, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update aplica patch em uma categoria (só campos presentes).
func (uc *CategoryUseCase) Update(in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete remove uma categoria. Rejeita enquanto houver produto vinculado.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}
