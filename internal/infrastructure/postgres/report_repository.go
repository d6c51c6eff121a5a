package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de somente leitura para o painel.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary devolve faturamento e quantidade de vendas no período.
// COALESCE garante zero em período sem vendas.
func (r *ReportRepo) SalesSummary(ctx context.Context, from, to time.Time) (decimal.Decimal, int, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS sales
	FROM sales
	WHERE created_at >= $1 AND created_at < $2`

	var revenue decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&revenue, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("report.SalesSummary: %w", err)
	}
	return revenue, count, nil
}

// CountOpenCommands conta comandas abertas no momento.
func (r *ReportRepo) CountOpenCommands(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM commands WHERE status = 'open'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("report.CountOpenCommands: %w", err)
	}
	return n, nil
}

// TopProducts devolve os `limit` produtos com maior faturamento no período.
// Os itens das vendas são blobs JSONB, então a agregação expande o array com
// jsonb_array_elements em vez de juntar tabelas de linhas.
func (r *ReportRepo) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    it->>'productId'                          AS product_id,
	    it->>'productName'                        AS product_name,
	    SUM((it->>'quantity')::INT)               AS quantity_sold,
	    SUM((it->>'subtotal')::NUMERIC)           AS revenue
	FROM sales s, jsonb_array_elements(s.items) it
	WHERE s.created_at >= $1 AND s.created_at < $2
	GROUP BY it->>'productId', it->>'productName'
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.QuantitySold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("report.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
