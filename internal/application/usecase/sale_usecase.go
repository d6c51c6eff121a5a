package usecase

import (
	"github.com/diegofsiilva/cenas-bar/internal/application/dto"
	"github.com/diegofsiilva/cenas-bar/internal/domain"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/internal/domain/repository"
)

// ReceiptGenerator produz o cupom de uma venda em PDF.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale) ([]byte, error)
}

// SaleUseCase consultas sobre o histórico de vendas. Vendas nascem apenas da
// finalização de comanda e nunca são alteradas depois.
type SaleUseCase struct {
	repo    repository.SaleRepository
	receipt ReceiptGenerator
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, receipt ReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{repo: repo, receipt: receipt}
}

// GetAll lista as vendas da mais recente para a mais antiga.
func (uc *SaleUseCase) GetAll() ([]*dto.SaleResponse, error) {
	sales, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// GetByID busca uma venda pelo identificador.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// Receipt gera o cupom em PDF de uma venda.
func (uc *SaleUseCase) Receipt(id string) ([]byte, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipt.Generate(sale)
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
