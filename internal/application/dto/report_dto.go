package dto

import "github.com/shopspring/decimal"

// TopProductDTO linha do ranking de produtos do painel.
type TopProductDTO struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	QuantitySold int             `json:"quantitySold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DashboardResponse visão consolidada do dia para o painel.
type DashboardResponse struct {
	RevenueToday  decimal.Decimal   `json:"revenueToday"`
	SalesToday    int               `json:"salesToday"`
	OpenCommands  int               `json:"openCommands"`
	LowStockCount int               `json:"lowStockCount"`
	LowStockItems []ProductResponse `json:"lowStockItems"`
	TopProducts   []TopProductDTO   `json:"topProducts"`
}
