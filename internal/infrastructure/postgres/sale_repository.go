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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação sobre PostgreSQL (usável com pool ou tx).
// Os itens da venda são uma cópia congelada em JSONB, nunca reescrita.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, command_id, table_id, table_name, items, total, payment_method, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(&s.ID, &s.CommandID, &s.TableID, &s.TableName,
		&items, &s.Total, &s.PaymentMethod, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("decode sale items: %w", err)
	}
	return &s, nil
}

// Create persiste uma venda.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("encode sale items: %w", err)
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO sales (id, command_id, table_id, table_name, items, total, payment_method, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sale.ID, sale.CommandID, sale.TableID, sale.TableName,
		items, sale.Total, sale.PaymentMethod, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID. Devolve nil se não existir.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetAll lista todas as vendas, mais recentes primeiro.
func (r *SaleRepo) GetAll() ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+saleColumns+` FROM sales ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
