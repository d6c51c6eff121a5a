package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// TableUseCase casos de uso CRUD para mesas.
type TableUseCase struct {
	repo        repository.TableRepository
	commandRepo repository.CommandRepository
}

// NewTableUseCase constrói o caso de uso.
func NewTableUseCase(repo repository.TableRepository, commandRepo repository.CommandRepository) *TableUseCase {
	return &TableUseCase{repo: repo, commandRepo: commandRepo}
}

// Create cria uma mesa. Nome é obrigatório.
func (uc *TableUseCase) Create(in dto.CreateTableRequest) (*dto.TableResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	table := &entity.Table{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// GetAll lista as mesas ordenadas por nome.
func (uc *TableUseCase) GetAll() ([]*dto.TableResponse, error) {
	tables, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		out = append(out, toTableResponse(t))
	}
	return out, nil
}

// Update aplica patch em uma mesa (só campos presentes).
func (uc *TableUseCase) Update(in dto.UpdateTableRequest) (*dto.TableResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	table, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		table.Name = *in.Name
	}
	if in.Description != nil {
		table.Description = *in.Description
	}
	if err := uc.repo.Update(table); err != nil {
		return nil, err
	}
	return toTableResponse(table), nil
}

// Delete remove uma mesa. Rejeita enquanto a mesa tiver comanda aberta.
func (uc *TableUseCase) Delete(id string) error {
	table, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if table == nil {
		return domain.ErrNotFound
	}
	open, err := uc.commandRepo.GetOpenByTable(id)
	if err != nil {
		return err
	}
	if open != nil {
		return domain.ErrTableOccupied
	}
	return uc.repo.Delete(id)
}

func toTableResponse(t *entity.Table) *dto.TableResponse {
	return &dto.TableResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
