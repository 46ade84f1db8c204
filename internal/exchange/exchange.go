package exchange

import (
	"context"

	"tradesdk/internal/model"
)

type Exchange interface {
	// 下单，市价单立即成交
	PlaceOrder(ctx context.Context, req *model.PlaceOrderReq) (model.ExecutionReport, error)
	// 获取订单状态
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	Orders(ctx context.Context) []model.Order
	// 成交记录
	Trades(ctx context.Context) []model.Trade
	// 当前持仓，市值按最新价计算
	Positions(ctx context.Context) ([]model.Portfolio, error)
	// 可交易标的
	Instruments(ctx context.Context) []model.Instrument
}
