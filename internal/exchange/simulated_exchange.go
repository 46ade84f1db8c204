package exchange

import (
	"context"
	"strings"
	"sync"
	"time"

	"tradesdk/internal/model"
	"tradesdk/internal/position"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
	"tradesdk/utils/uuid"

	"github.com/shopspring/decimal"
)

var _ Exchange = (*SimulatedExchange)(nil)

// InstrumentCatalog 标的查询，*Catalog 为默认实现
type InstrumentCatalog interface {
	Lookup(symbol string) (model.Instrument, error)
	LastPrice(symbol string) (decimal.Decimal, error)
	List() []model.Instrument
}

// SimulatedExchange 模拟交易所
// 市价单按标的最新价立即成交，限价单只挂单不成交
// 订单、成交流水、持仓由同一把锁保护，成交的三步写入是原子的
type SimulatedExchange struct {
	catalog InstrumentCatalog

	mu     sync.Mutex
	orders *orderStore
	trades *tradeLog
	ledger *position.Ledger

	rejectUncoveredSell bool
	now                 func() time.Time
	newID               func() string
}

type Option func(*SimulatedExchange)

// WithRejectUncoveredSell 卖出数量超过持仓时拒单
func WithRejectUncoveredSell(reject bool) Option {
	return func(s *SimulatedExchange) {
		s.rejectUncoveredSell = reject
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *SimulatedExchange) {
		s.now = now
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(s *SimulatedExchange) {
		s.newID = gen
	}
}

func NewSimulatedExchange(catalog InstrumentCatalog, opts ...Option) *SimulatedExchange {
	s := &SimulatedExchange{
		catalog: catalog,
		orders:  newOrderStore(),
		trades:  &tradeLog{},
		ledger:  position.NewLedger(catalog),
		now:     time.Now,
		newID:   uuid.GenUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder 校验并创建订单，市价单同步成交
// 校验失败时不会产生订单和成交
func (s *SimulatedExchange) PlaceOrder(ctx context.Context, req *model.PlaceOrderReq) (model.ExecutionReport, error) {
	if req == nil {
		return model.ExecutionReport{}, errors.WithCode(ecode.ValidateErr, "empty order request")
	}
	normalized := *req
	normalized.Symbol = strings.TrimSpace(req.Symbol)
	if err := s.validate(&normalized); err != nil {
		return model.ExecutionReport{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rejectUncoveredSell && normalized.OrderType == model.Sell &&
		s.ledger.Holding(normalized.Symbol) < normalized.Quantity {
		return model.ExecutionReport{}, errors.Wrapf(model.ErrUncoveredSell, ecode.ValidateErr,
			"sell %d %s, holding %d", normalized.Quantity, normalized.Symbol, s.ledger.Holding(normalized.Symbol))
	}

	order := s.orders.create(s.newID(), &normalized, s.now())
	if order.OrderStyle != model.Market {
		// 限价单保持 PLACED，不会被触发
		return model.ExecutionReport{Order: order}, nil
	}

	executed, trade, err := s.execute(order)
	if err != nil {
		return model.ExecutionReport{Order: order}, err
	}
	return model.ExecutionReport{Order: executed, Trade: &trade}, nil
}

// execute 市价单成交，调用方持有锁
// 任何一步失败都不会写入成交或修改订单状态
func (s *SimulatedExchange) execute(order model.Order) (model.Order, model.Trade, error) {
	inst, err := s.catalog.Lookup(order.Symbol)
	if err != nil {
		return order, model.Trade{}, err
	}

	trade := model.Trade{
		TradeId:   s.newID(),
		OrderId:   order.OrderId,
		Symbol:    order.Symbol,
		OrderType: order.OrderType,
		Quantity:  order.Quantity,
		Price:     inst.LastTradedPrice,
		Timestamp: s.now(),
	}
	// 持仓更新可能失败，放在最前面，成功后再写成交和订单状态
	if err := s.ledger.Apply(trade); err != nil {
		return order, model.Trade{}, err
	}
	s.trades.append(trade)

	executed := order.WithStatus(model.OrderExecuted)
	s.orders.put(executed)
	return executed, trade, nil
}

func (s *SimulatedExchange) validate(req *model.PlaceOrderReq) error {
	if req.Symbol == "" {
		return model.ErrSymbolRequired
	}
	if !req.OrderType.Valid() {
		return model.ErrInvalidOrderType
	}
	if !req.OrderStyle.Valid() {
		return model.ErrInvalidOrderStyle
	}
	if req.Quantity <= 0 {
		return model.ErrInvalidQuantity
	}
	if req.OrderStyle == model.Limit {
		if req.Price == nil {
			return model.ErrLimitPriceRequired
		}
		if !req.Price.IsPositive() {
			return model.ErrInvalidPrice
		}
	}
	_, err := s.catalog.Lookup(req.Symbol)
	return err
}

func (s *SimulatedExchange) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.get(orderID)
}

func (s *SimulatedExchange) Orders(ctx context.Context) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.list()
}

func (s *SimulatedExchange) Trades(ctx context.Context) []model.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trades.list()
}

func (s *SimulatedExchange) Positions(ctx context.Context) ([]model.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Positions()
}

// Instruments 标的目录只读，不需要加锁
func (s *SimulatedExchange) Instruments(ctx context.Context) []model.Instrument {
	return s.catalog.List()
}
