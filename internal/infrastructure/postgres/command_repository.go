package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.CommandRepository = (*CommandRepo)(nil)

// CommandRepo implementação sobre PostgreSQL (usável com pool ou tx).
// Os itens vivem como JSONB na própria linha da comanda: leitura deserializa e
// escrita regrava a coleção inteira junto com a linha.
type CommandRepo struct {
	q Querier
}

// NewCommandRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCommandRepository(q Querier) *CommandRepo {
	return &CommandRepo{q: q}
}

const commandColumns = `id, table_id, table_name, items, total, status, opened_at, closed_at`

func scanCommand(row pgx.Row) (*entity.Command, error) {
	var c entity.Command
	var items []byte
	err := row.Scan(&c.ID, &c.TableID, &c.TableName, &items,
		&c.Total, &c.Status, &c.OpenedAt, &c.ClosedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &c.Items); err != nil {
		return nil, fmt.Errorf("decode command items: %w", err)
	}
	return &c, nil
}

// Create persiste uma nova comanda.
func (r *CommandRepo) Create(command *entity.Command) error {
	items, err := json.Marshal(command.Items)
	if err != nil {
		return fmt.Errorf("encode command items: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO commands (id, table_id, table_name, items, total, status, opened_at, closed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		command.ID, command.TableID, command.TableName, items,
		command.Total, command.Status, command.OpenedAt, command.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

// GetByID obtém uma comanda por ID. Devolve nil se não existir.
func (r *CommandRepo) GetByID(id string) (*entity.Command, error) {
	c, err := scanCommand(r.q.QueryRow(context.Background(),
		`SELECT `+commandColumns+` FROM commands WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get command: %w", err)
	}
	return c, nil
}

// GetForUpdate obtém uma comanda bloqueando a linha (SELECT FOR UPDATE).
// Usar somente dentro de uma transação: é o que serializa finalizações concorrentes.
func (r *CommandRepo) GetForUpdate(id string) (*entity.Command, error) {
	c, err := scanCommand(r.q.QueryRow(context.Background(),
		`SELECT `+commandColumns+` FROM commands WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get command for update: %w", err)
	}
	return c, nil
}

// GetAll lista todas as comandas, mais recentes primeiro.
func (r *CommandRepo) GetAll() ([]*entity.Command, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+commandColumns+` FROM commands ORDER BY opened_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Command
	for rows.Next() {
		c, err := scanCommand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetOpenByTable devolve a comanda aberta da mesa, ou nil se não houver.
func (r *CommandRepo) GetOpenByTable(tableID string) (*entity.Command, error) {
	c, err := scanCommand(r.q.QueryRow(context.Background(),
		`SELECT `+commandColumns+` FROM commands WHERE table_id = $1 AND status = $2`,
		tableID, entity.CommandOpen))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open command: %w", err)
	}
	return c, nil
}

// Update regrava itens, total, status e fechamento de forma atômica com a linha.
func (r *CommandRepo) Update(command *entity.Command) error {
	items, err := json.Marshal(command.Items)
	if err != nil {
		return fmt.Errorf("encode command items: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE commands SET items = $2, total = $3, status = $4, closed_at = $5 WHERE id = $1`,
		command.ID, items, command.Total, command.Status, command.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update command: %w", err)
	}
	return nil
}

// Delete remove uma comanda por ID.
func (r *CommandRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM commands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete command: %w", err)
	}
	return nil
}
