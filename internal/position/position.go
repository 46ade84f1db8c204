package position

import (
	"tradesdk/internal/model"

	"github.com/shopspring/decimal"
)

// PriceSource 提供标的最新价，用于计算持仓市值
type PriceSource interface {
	LastPrice(symbol string) (decimal.Decimal, error)
}

// holding 账本内的持仓，cost 为精确的持仓成本，均价由 cost / quantity 得出
type holding struct {
	model.Portfolio
	cost decimal.Decimal
}

// Ledger 持仓账本，按标的记录数量和持仓均价
// 本身不加锁，由调用方（撮合引擎）串行访问
type Ledger struct {
	prices    PriceSource
	positions map[string]*holding
	symbols   []string // 建仓顺序
}

func NewLedger(prices PriceSource) *Ledger {
	return &Ledger{
		prices:    prices,
		positions: make(map[string]*holding),
	}
}

// Holding 当前持仓数量，没有持仓时返回0
func (l *Ledger) Holding(symbol string) int64 {
	if p, ok := l.positions[symbol]; ok {
		return p.Quantity
	}
	return 0
}

// Apply 按成交更新持仓
//   - 买入: 没有持仓时建仓，否则按成交量加权重新计算均价
//   - 卖出: 减少数量，均价不变；数量 <= 0 时删除持仓
//   - 没有持仓时卖出: 不影响账本
//
// 买入时累加精确成本再除以数量，均价只在这一步舍入一次
// 卖出时成本按剩余数量等比缩减，均价保持原值
// 出错时账本不会被修改
func (l *Ledger) Apply(trade model.Trade) error {
	current, exists := l.positions[trade.Symbol]
	qty := decimal.NewFromInt(trade.Quantity)

	var next holding
	switch trade.OrderType {
	case model.Buy:
		if !exists {
			next = holding{
				Portfolio: model.Portfolio{
					Symbol:       trade.Symbol,
					Quantity:     trade.Quantity,
					AveragePrice: trade.Price,
				},
				cost: trade.Price.Mul(qty),
			}
			break
		}
		next = *current
		next.cost = current.cost.Add(trade.Price.Mul(qty))
		next.Quantity = current.Quantity + trade.Quantity
		next.AveragePrice = next.cost.Div(decimal.NewFromInt(next.Quantity))
	case model.Sell:
		if !exists {
			return nil
		}
		remaining := current.Quantity - trade.Quantity
		if remaining <= 0 {
			l.remove(trade.Symbol)
			return nil
		}
		next = *current
		next.Quantity = remaining
		next.cost = current.cost.Mul(decimal.NewFromInt(remaining)).Div(decimal.NewFromInt(current.Quantity))
	default:
		return model.ErrInvalidOrderType
	}

	last, err := l.prices.LastPrice(trade.Symbol)
	if err != nil {
		return err
	}
	next.CurrentValue = last.Mul(decimal.NewFromInt(next.Quantity))

	if !exists {
		l.symbols = append(l.symbols, trade.Symbol)
	}
	l.positions[trade.Symbol] = &next
	return nil
}

// Positions 返回所有持仓，市值按最新价重新计算
func (l *Ledger) Positions() ([]model.Portfolio, error) {
	list := make([]model.Portfolio, 0, len(l.symbols))
	for _, symbol := range l.symbols {
		p := l.positions[symbol]
		last, err := l.prices.LastPrice(symbol)
		if err != nil {
			return nil, err
		}
		p.CurrentValue = last.Mul(decimal.NewFromInt(p.Quantity))
		list = append(list, p.Portfolio)
	}
	return list, nil
}

func (l *Ledger) remove(symbol string) {
	delete(l.positions, symbol)
	for i, s := range l.symbols {
		if s == symbol {
			l.symbols = append(l.symbols[:i], l.symbols[i+1:]...)
			return
		}
	}
}
