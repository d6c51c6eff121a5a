package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category_id, category_name, price, stock_quantity, min_stock_alert, created_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CategoryName,
		&p.Price, &p.StockQuantity, &p.MinStockAlert, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO products (id, name, category_id, category_name, price, stock_quantity, min_stock_alert, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		product.ID, product.Name, product.CategoryID, product.CategoryName,
		product.Price, product.StockQuantity, product.MinStockAlert, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve nil se não existir.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém um produto bloqueando a linha (SELECT FOR UPDATE).
// Usar somente dentro de uma transação.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// GetAll lista todos os produtos ordenados por nome.
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products ORDER BY name`)
}

// GetLowStock lista produtos no limiar de alerta ou abaixo dele.
func (r *ProductRepo) GetLowStock() ([]*entity.Product, error) {
	return r.list(`SELECT ` + productColumns + ` FROM products WHERE stock_quantity <= min_stock_alert ORDER BY name`)
}

func (r *ProductRepo) list(query string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCategory conta quantos produtos referenciam a categoria (guard de exclusão).
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// Update atualiza um produto existente. Estoque não passa por aqui: é atualizado
// via UpdateStock dentro de movimentos e finalização de comanda.
func (r *ProductRepo) Update(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2, category_id = $3, category_name = $4, price = $5, min_stock_alert = $6
		 WHERE id = $1`,
		product.ID, product.Name, product.CategoryID, product.CategoryName,
		product.Price, product.MinStockAlert,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock define o estoque absoluto do produto.
func (r *ProductRepo) UpdateStock(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
