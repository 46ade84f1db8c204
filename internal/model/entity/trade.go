package entity

import (
	"time"

	"tradesdk/internal/model"

	"github.com/shopspring/decimal"
)

// TradeRecord 成交审计表，只写入不回读
type TradeRecord struct {
	ID         uint            `gorm:"column:id;primary_key;" json:"id"` // 主键id，自增长
	TradeId    string          `gorm:"column:trade_id;uniqueIndex;size:64" json:"trade_id"`
	OrderId    string          `gorm:"column:order_id;index;size:64" json:"order_id"`
	Symbol     string          `gorm:"column:symbol;size:32" json:"symbol"`
	Side       string          `gorm:"column:side;size:8" json:"side"`
	Quantity   int64           `gorm:"column:quantity" json:"quantity"`
	Price      decimal.Decimal `gorm:"column:price;type:decimal(20,8)" json:"price"`
	Notional   decimal.Decimal `gorm:"column:notional;type:decimal(28,8)" json:"notional"` // 成交金额
	ExecutedAt time.Time       `gorm:"column:executed_at" json:"executed_at"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (TradeRecord) TableName() string {
	return "trade_record"
}

func NewTradeRecord(t model.Trade) *TradeRecord {
	return &TradeRecord{
		TradeId:    t.TradeId,
		OrderId:    t.OrderId,
		Symbol:     t.Symbol,
		Side:       string(t.OrderType),
		Quantity:   t.Quantity,
		Price:      t.Price,
		Notional:   t.Notional(),
		ExecutedAt: t.Timestamp,
	}
}
