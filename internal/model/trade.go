package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade 成交记录，只追加不修改
type Trade struct {
	TradeId   string          `json:"tradeId"`
	OrderId   string          `json:"orderId"`
	Symbol    string          `json:"symbol"`
	OrderType OrderType       `json:"orderType"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // 成交价
	Timestamp time.Time       `json:"timestamp"`
}

// Notional 成交金额
func (t Trade) Notional() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}
