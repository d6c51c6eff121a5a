package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação sobre PostgreSQL (usável com pool ou tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO inventory_movements (id, product_id, product_name, type, quantity, reason, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		movement.ID, movement.ProductID, movement.ProductName,
		movement.Type, movement.Quantity, reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetAll lista todos os movimentos, mais recentes primeiro.
func (r *StockMovementRepo) GetAll() ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, product_id, product_name, type, quantity, reason, created_at
		 FROM inventory_movements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var reason *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type,
			&m.Quantity, &reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
