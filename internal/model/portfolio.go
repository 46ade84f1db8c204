package model

import "github.com/shopspring/decimal"

// Portfolio 单个标的的持仓
type Portfolio struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"` // 持仓均价，只在买入时重新计算
	CurrentValue decimal.Decimal `json:"currentValue"` // 数量 * 最新价，读取时重新计算
}

// CostBasis 持仓成本
func (p Portfolio) CostBasis() decimal.Decimal {
	return p.AveragePrice.Mul(decimal.NewFromInt(p.Quantity))
}

// PortfolioSummary 持仓汇总
type PortfolioSummary struct {
	Holdings      int             `json:"holdings"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	UnrealizedPnl decimal.Decimal `json:"unrealizedPnl"`
}
