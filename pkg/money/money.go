package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor monetário no padrão brasileiro (R$ 1.234,56).
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}
