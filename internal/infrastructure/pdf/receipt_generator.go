// Package pdf gera o cupom não fiscal de uma venda usando Maroto v2.
//
// Layout da página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  CABEÇALHO: nome da casa + CUPOM NÃO FISCAL   │
//	│  Mesa / Pagamento / Data-hora                 │
//	│  ───────────────────────────────────────────  │
//	│  TABELA: Qtd | Item | P.Unit | Subtotal       │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  Rodapé: agradecimento                        │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/diegofsiilva/cenas-bar/internal/application/usecase"
	"github.com/diegofsiilva/cenas-bar/internal/domain/entity"
	"github.com/diegofsiilva/cenas-bar/pkg/money"
)

var (
	colorDark = &props.Color{Red: 33, Green: 33, Blue: 33}
	colorGray = &props.Color{Red: 110, Green: 110, Blue: 110}
)

var paymentLabels = map[entity.PaymentMethod]string{
	entity.PaymentCash: "Dinheiro",
	entity.PaymentCard: "Cartão",
	entity.PaymentPix:  "Pix",
}

// ReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	venueName string
}

var _ usecase.ReceiptGenerator = (*ReceiptGenerator)(nil)

// NewReceiptGenerator constrói o gerador. venueName aparece no cabeçalho.
func NewReceiptGenerator(venueName string) *ReceiptGenerator {
	return &ReceiptGenerator{venueName: venueName}
}

// Generate gera o cupom e devolve os bytes do PDF.
func (g *ReceiptGenerator) Generate(sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "courier", Size: 9}).
		WithTitle("Cupom de venda", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(g.venueName, sale)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.4}))
	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(sale.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorDark, Thickness: 0.4}))
	m.AddRows(totalRow(sale))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar cupom: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(venueName string, sale *entity.Sale) []core.Row {
	payment := paymentLabels[sale.PaymentMethod]
	if payment == "" {
		payment = string(sale.PaymentMethod)
	}
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New(venueName, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 1,
			}),
			text.New("CUPOM NÃO FISCAL", props.Text{
				Size: 8, Align: align.Center, Top: 9, Color: colorGray,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New("Mesa: "+sale.TableName, props.Text{Size: 9, Top: 1}),
			text.New(fmt.Sprintf("Pagamento: %s   |   %s",
				payment, sale.CreatedAt.Format("02/01/2006 15:04"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		)),
	}
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Qtd", 1, align.Center),
		h("Item", 6, align.Left),
		h("P.Unit", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func itemRows(items []entity.CommandItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatBRL(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatBRL(it.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func totalRow(sale *entity.Sale) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Left, Top: 2,
		})),
		col.New(6).Add(text.New(money.FormatBRL(sale.Total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
		})),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Obrigado pela preferência!", props.Text{
			Size: 8, Align: align.Center, Top: 4, Color: colorGray,
		}),
	))
}
