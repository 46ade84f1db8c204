package service

import (
	"context"
	"time"

	"tradesdk/internal/exchange"
	"tradesdk/internal/model"
	"tradesdk/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var _ TradingService = (*tradingService)(nil)

type TradingService interface {
	PlaceOrder(ctx context.Context, req *model.PlaceOrderReq) (model.Order, error)
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListTrades(ctx context.Context) ([]model.Trade, error)
	ListPositions(ctx context.Context) ([]model.Portfolio, error)
	PortfolioSummary(ctx context.Context) (model.PortfolioSummary, error)
	ListInstruments(ctx context.Context) ([]model.Instrument, error)
}

// 单个落地的超时时间，超时只记录日志
const sinkTimeout = 3 * time.Second

type tradingService struct {
	ex    exchange.Exchange
	sinks []TradeSink
}

func NewTradingService(ex exchange.Exchange, sinks ...TradeSink) TradingService {
	return &tradingService{ex: ex, sinks: sinks}
}

func (s *tradingService) PlaceOrder(ctx context.Context, req *model.PlaceOrderReq) (model.Order, error) {
	report, err := s.ex.PlaceOrder(ctx, req)
	if err != nil {
		logger.Warn("place order rejected", append(requestFields(req), logger.Pair("error", err.Error()))...)
		return model.Order{}, err
	}

	logger.Info("order placed",
		logger.Pair("orderId", report.Order.OrderId),
		logger.Pair("symbol", report.Order.Symbol),
		logger.Pair("status", report.Order.Status))

	if report.Trade != nil {
		logger.Info("order executed",
			logger.Pair("orderId", report.Order.OrderId),
			logger.Pair("tradeId", report.Trade.TradeId),
			logger.Pair("price", report.Trade.Price.String()),
			logger.Pair("quantity", report.Trade.Quantity))
		// 成交已经在内存中提交，落地失败不影响下单结果
		if err := s.dispatch(ctx, *report.Trade); err != nil {
			logger.Errorf("record trade %s failed: %v", report.Trade.TradeId, err)
		}
	}
	return report.Order, nil
}

// requestFields 下单请求的日志字段，请求为空时不输出
func requestFields(req *model.PlaceOrderReq) []zap.Field {
	if req == nil {
		return nil
	}
	return []zap.Field{
		logger.Pair("symbol", req.Symbol),
		logger.Pair("orderType", req.OrderType),
		logger.Pair("orderStyle", req.OrderStyle),
		logger.Pair("quantity", req.Quantity),
	}
}

// dispatch 依次写入所有落地，合并错误
func (s *tradingService) dispatch(ctx context.Context, trade model.Trade) (err error) {
	base := context.WithoutCancel(ctx)
	for _, sink := range s.sinks {
		sctx, cancel := context.WithTimeout(base, sinkTimeout)
		if e := sink.RecordTrade(sctx, trade); e != nil {
			err = multierr.Append(err, &sinkError{name: sink.Name(), err: e})
		}
		cancel()
	}
	return err
}

type sinkError struct {
	name string
	err  error
}

func (e *sinkError) Error() string { return e.name + ": " + e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }

func (s *tradingService) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	return s.ex.GetOrder(ctx, orderID)
}

func (s *tradingService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.ex.Orders(ctx), nil
}

func (s *tradingService) ListTrades(ctx context.Context) ([]model.Trade, error) {
	return s.ex.Trades(ctx), nil
}

func (s *tradingService) ListPositions(ctx context.Context) ([]model.Portfolio, error) {
	return s.ex.Positions(ctx)
}

// PortfolioSummary 汇总持仓市值、成本和未实现盈亏
func (s *tradingService) PortfolioSummary(ctx context.Context) (model.PortfolioSummary, error) {
	positions, err := s.ex.Positions(ctx)
	if err != nil {
		return model.PortfolioSummary{}, err
	}
	sum := model.PortfolioSummary{
		Holdings:   len(positions),
		TotalValue: decimal.Zero,
		TotalCost:  decimal.Zero,
	}
	for _, p := range positions {
		sum.TotalValue = sum.TotalValue.Add(p.CurrentValue)
		sum.TotalCost = sum.TotalCost.Add(p.CostBasis())
	}
	sum.UnrealizedPnl = sum.TotalValue.Sub(sum.TotalCost)
	return sum, nil
}

func (s *tradingService) ListInstruments(ctx context.Context) ([]model.Instrument, error) {
	return s.ex.Instruments(ctx), nil
}
