package command

import (
	"context"

	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade da finalização:
// baixa de estoque + movimento + venda + fechamento acontecem juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		commandRepo repository.CommandRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
