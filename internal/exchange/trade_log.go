package exchange

import "tradesdk/internal/model"

// tradeLog 成交流水，只追加
type tradeLog struct {
	trades []model.Trade
}

func (l *tradeLog) append(t model.Trade) {
	l.trades = append(l.trades, t)
}

func (l *tradeLog) list() []model.Trade {
	out := make([]model.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}
