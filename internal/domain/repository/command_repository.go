package repository

import "github.com/diegofsiilva/cenas-bar/internal/domain/entity"

// CommandRepository define o porto de persistência para Command.
// Os itens são (de)serializados como blob JSON junto com a linha da comanda,
// então Update regrava a coleção inteira de forma atômica com a linha.
type CommandRepository interface {
	Create(command *entity.Command) error
	GetByID(id string) (*entity.Command, error)
	GetForUpdate(id string) (*entity.Command, error)
	GetAll() ([]*entity.Command, error)
	GetOpenByTable(tableID string) (*entity.Command, error)
	Update(command *entity.Command) error
	Delete(id string) error
}
