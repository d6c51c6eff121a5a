package inventory

import (
	"context"
	"time"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// UseCase registra movimentos manuais de estoque (in, out, adjustment) de
// forma transacional, com bloqueio de linha do produto (SELECT FOR UPDATE).
// O tipo sale é exclusivo da finalização de comanda e não passa por aqui.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// Register aplica o movimento ao estoque e grava o histórico na mesma transação.
// in: soma Quantity; out: subtrai (falha se ficar negativo); adjustment: define
// o estoque absoluto em Quantity.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) error {
	if in.ProductID == "" || !in.Type.Valid() || in.Type == entity.MovementSale {
		return domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementIn, entity.MovementOut:
		if in.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementAdjustment:
		if in.Quantity < 0 {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	return uc.txRunner.RunStock(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.StockQuantity
		switch in.Type {
		case entity.MovementIn:
			newQty += in.Quantity
		case entity.MovementOut:
			if product.StockQuantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty -= in.Quantity
		case entity.MovementAdjustment:
			newQty = in.Quantity
		}

		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		return movementRepo.Create(&entity.StockMovement{
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Reason:      in.Reason,
			CreatedAt:   now,
		})
	})
}

// GetAll lista o histórico de movimentos, mais recentes primeiro.
func (uc *UseCase) GetAll() ([]*dto.MovementResponse, error) {
	movements, err := uc.movementRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Type:        string(m.Type),
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}
