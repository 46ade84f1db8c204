package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType 买卖方向
type OrderType string

const (
	Buy  OrderType = "BUY"
	Sell OrderType = "SELL"
)

func (t OrderType) Valid() bool {
	return t == Buy || t == Sell
}

// OrderStyle 订单方式
type OrderStyle string

const (
	// 市价单，下单后立即按最新价成交
	Market OrderStyle = "MARKET"
	// 限价单，只挂单不成交
	Limit OrderStyle = "LIMIT"
)

func (s OrderStyle) Valid() bool {
	return s == Market || s == Limit
}

type OrderStatus string

const (
	OrderNew       OrderStatus = "NEW"
	OrderPlaced    OrderStatus = "PLACED"
	OrderExecuted  OrderStatus = "EXECUTED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order 订单快照，状态变化时生成新的值，不在原对象上修改
type Order struct {
	OrderId    string           `json:"orderId"`
	Symbol     string           `json:"symbol"`
	OrderType  OrderType        `json:"orderType"`
	OrderStyle OrderStyle       `json:"orderStyle"`
	Quantity   int64            `json:"quantity"`
	Price      *decimal.Decimal `json:"price"` // 限价单必填，市价单可为空
	Status     OrderStatus      `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
}

// WithStatus 返回状态更新后的订单副本
func (o Order) WithStatus(status OrderStatus) Order {
	next := o
	if o.Price != nil {
		p := *o.Price
		next.Price = &p
	}
	next.Status = status
	return next
}

// PlaceOrderReq 下单请求体
type PlaceOrderReq struct {
	Symbol     string           `json:"symbol" binding:"required"`
	OrderType  OrderType        `json:"orderType" binding:"required,oneof=BUY SELL"`
	OrderStyle OrderStyle       `json:"orderStyle" binding:"required,oneof=MARKET LIMIT"`
	Quantity   int64            `json:"quantity"`
	Price      *decimal.Decimal `json:"price"`
}

// 查询订单
type OrderDetailReq struct {
	OrderId string `uri:"id" binding:"required"`
}

// ExecutionReport 下单结果，市价单成交时 Trade 不为空
type ExecutionReport struct {
	Order Order
	Trade *Trade
}
