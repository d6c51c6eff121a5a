package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementação sobre PostgreSQL (usável com pool ou tx).
type TableRepo struct {
	q Querier
}

// NewTableRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

// Create persiste uma nova mesa.
func (r *TableRepo) Create(table *entity.Table) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO tables (id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		table.ID, table.Name, table.Description, table.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID obtém uma mesa por ID. Devolve nil se não existir.
func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	var t entity.Table
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM tables WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

// GetAll lista todas as mesas ordenadas por nome.
func (r *TableRepo) GetAll() ([]*entity.Table, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at FROM tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update atualiza uma mesa existente.
func (r *TableRepo) Update(table *entity.Table) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tables SET name = $2, description = $3 WHERE id = $1`,
		table.ID, table.Name, table.Description,
	)
	if err != nil {
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

// Delete remove uma mesa por ID. O guard de comanda aberta é checado na aplicação.
func (r *TableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}
