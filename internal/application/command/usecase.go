package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// UseCase governa o ciclo de vida da comanda: abrir, lançar/remover itens e
// finalizar em venda. Aberta -> fechada, sem volta.
type UseCase struct {
	txRunner    TxRunner
	commandRepo repository.CommandRepository
	tableRepo   repository.TableRepository
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	commandRepo repository.CommandRepository,
	tableRepo repository.TableRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		commandRepo: commandRepo,
		tableRepo:   tableRepo,
		productRepo: productRepo,
	}
}

// Open abre uma comanda vazia para a mesa. Falha se a mesa não existir ou já
// tiver comanda aberta (no máximo uma comanda ativa por mesa).
func (uc *UseCase) Open(in dto.OpenCommandRequest) (*dto.CommandResponse, error) {
	if in.TableID == "" {
		return nil, domain.ErrInvalidInput
	}
	table, err := uc.tableRepo.GetByID(in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrNotFound
	}
	open, err := uc.commandRepo.GetOpenByTable(in.TableID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrTableOccupied
	}

	cmd := &entity.Command{
		ID:        uuid.New().String(),
		TableID:   table.ID,
		TableName: table.Name,
		Items:     []entity.CommandItem{},
		Total:     decimal.Zero,
		Status:    entity.CommandOpen,
		OpenedAt:  time.Now(),
	}
	if err := uc.commandRepo.Create(cmd); err != nil {
		return nil, err
	}
	return toCommandResponse(cmd), nil
}

// AddItem lança um item na comanda, com snapshot de nome e preço do produto.
// Pré-checagem de estoque aqui; a finalização revalida sob lock antes da baixa.
func (uc *UseCase) AddItem(commandID string, in dto.AddItemRequest) (*dto.CommandResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cmd, err := uc.commandRepo.GetByID(commandID)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.Status != entity.CommandOpen {
		return nil, domain.ErrCommandClosed
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StockQuantity < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	qty := decimal.NewFromInt(int64(in.Quantity))
	cmd.Items = append(cmd.Items, entity.CommandItem{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitPrice:   product.Price,
		Subtotal:    product.Price.Mul(qty),
		AddedAt:     time.Now(),
	})
	cmd.Total = cmd.ComputeTotal()
	if err := uc.commandRepo.Update(cmd); err != nil {
		return nil, err
	}
	return toCommandResponse(cmd), nil
}

// RemoveItem retira um item da comanda e recalcula o total.
func (uc *UseCase) RemoveItem(commandID, itemID string) (*dto.CommandResponse, error) {
	cmd, err := uc.commandRepo.GetByID(commandID)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.Status != entity.CommandOpen {
		return nil, domain.ErrCommandClosed
	}

	kept := cmd.Items[:0]
	found := false
	for _, it := range cmd.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	cmd.Items = kept
	cmd.Total = cmd.ComputeTotal()
	if err := uc.commandRepo.Update(cmd); err != nil {
		return nil, err
	}
	return toCommandResponse(cmd), nil
}

// Patch substitui a lista de itens de uma comanda aberta, recalculando
// subtotais e total no servidor (o cliente nunca dita valores).
func (uc *UseCase) Patch(in dto.UpdateCommandRequest) (*dto.CommandResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	cmd, err := uc.commandRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, domain.ErrNotFound
	}
	if cmd.Status != entity.CommandOpen {
		return nil, domain.ErrCommandClosed
	}
	if in.Items != nil {
		for i := range in.Items {
			it := &in.Items[i]
			if it.Quantity <= 0 || it.ProductID == "" {
				return nil, domain.ErrInvalidInput
			}
			if it.ID == "" {
				it.ID = uuid.New().String()
			}
			if it.AddedAt.IsZero() {
				it.AddedAt = time.Now()
			}
			it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		cmd.Items = in.Items
		cmd.Total = cmd.ComputeTotal()
	}
	if err := uc.commandRepo.Update(cmd); err != nil {
		return nil, err
	}
	return toCommandResponse(cmd), nil
}

// Finalize fecha a comanda em venda dentro de uma única transação: bloqueia a
// comanda, revalida e baixa o estoque item a item (abortando tudo se faltar
// estoque), emite um movimento do tipo sale por item, grava a venda imutável e
// fecha a comanda. Uma segunda finalização concorrente encontra status fechado
// sob o lock e recebe conflito.
func (uc *UseCase) Finalize(ctx context.Context, commandID string, method entity.PaymentMethod) (*dto.SaleResponse, error) {
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var sale *entity.Sale

	err := uc.txRunner.Run(ctx, func(
		commandRepo repository.CommandRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error {
		cmd, err := commandRepo.GetForUpdate(commandID)
		if err != nil {
			return err
		}
		if cmd == nil {
			return domain.ErrNotFound
		}
		if cmd.Status != entity.CommandOpen {
			return domain.ErrCommandClosed
		}
		if len(cmd.Items) == 0 {
			return domain.ErrEmptyCommand
		}

		for _, it := range cmd.Items {
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("produto %s da comanda: %w", it.ProductID, domain.ErrNotFound)
			}
			if product.StockQuantity < it.Quantity {
				return fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQuantity-it.Quantity); err != nil {
				return err
			}
			if err := movementRepo.Create(&entity.StockMovement{
				ProductID:   product.ID,
				ProductName: product.Name,
				Type:        entity.MovementSale,
				Quantity:    it.Quantity,
				Reason:      "venda - mesa " + cmd.TableName,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
		}

		sale = &entity.Sale{
			ID:            uuid.New().String(),
			CommandID:     cmd.ID,
			TableID:       cmd.TableID,
			TableName:     cmd.TableName,
			Items:         append([]entity.CommandItem(nil), cmd.Items...),
			Total:         cmd.ComputeTotal(),
			PaymentMethod: method,
			CreatedAt:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		cmd.Status = entity.CommandClosed
		cmd.ClosedAt = &now
		cmd.Total = sale.Total
		return commandRepo.Update(cmd)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetAll lista todas as comandas, mais recentes primeiro.
func (uc *UseCase) GetAll() ([]*dto.CommandResponse, error) {
	commands, err := uc.commandRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommandResponse, 0, len(commands))
	for _, c := range commands {
		out = append(out, toCommandResponse(c))
	}
	return out, nil
}

// GetOpenByTable devolve a comanda aberta da mesa, ou nil se não houver.
func (uc *UseCase) GetOpenByTable(tableID string) (*dto.CommandResponse, error) {
	cmd, err := uc.commandRepo.GetOpenByTable(tableID)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, nil
	}
	return toCommandResponse(cmd), nil
}

// Delete cancela uma comanda aberta. Comandas fechadas são histórico e não
// podem ser removidas.
func (uc *UseCase) Delete(id string) error {
	cmd, err := uc.commandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cmd == nil {
		return domain.ErrNotFound
	}
	if cmd.Status != entity.CommandOpen {
		return domain.ErrCommandClosed
	}
	return uc.commandRepo.Delete(id)
}

// HasOpenCommand informa se a mesa tem comanda aberta (guard de exclusão de mesa).
func (uc *UseCase) HasOpenCommand(tableID string) (bool, error) {
	cmd, err := uc.commandRepo.GetOpenByTable(tableID)
	if err != nil {
		return false, err
	}
	return cmd != nil, nil
}

func toCommandResponse(c *entity.Command) *dto.CommandResponse {
	items := c.Items
	if items == nil {
		items = []entity.CommandItem{}
	}
	return &dto.CommandResponse{
		ID:        c.ID,
		TableID:   c.TableID,
		TableName: c.TableName,
		Items:     items,
		Total:     c.Total,
		Status:    string(c.Status),
		OpenedAt:  c.OpenedAt,
		ClosedAt:  c.ClosedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		CommandID:     s.CommandID,
		TableID:       s.TableID,
		TableName:     s.TableName,
		Items:         s.Items,
		Total:         s.Total,
		PaymentMethod: string(s.PaymentMethod),
		CreatedAt:     s.CreatedAt,
	}
}
