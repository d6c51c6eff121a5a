package inventory

import (
	"context"

	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD com os
// repositórios de produto e movimento atados a essa tx. Garante que estoque e
// histórico de movimentos mudem juntos.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
