package position

import (
	"testing"

	"tradesdk/internal/model"
	"tradesdk/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPrices map[string]decimal.Decimal

func (f fixedPrices) LastPrice(symbol string) (decimal.Decimal, error) {
	p, ok := f[symbol]
	if !ok {
		return decimal.Zero, model.ErrInstrumentNotFound
	}
	return p, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func trade(symbol string, side model.OrderType, qty int64, price string) model.Trade {
	return model.Trade{Symbol: symbol, OrderType: side, Quantity: qty, Price: d(price)}
}

func TestLedgerAverageCost(t *testing.T) {
	prices := fixedPrices{"RELIANCE": d("2450.50")}
	l := NewLedger(prices)

	require.NoError(t, l.Apply(trade("RELIANCE", model.Buy, 10, "2450.50")))
	require.NoError(t, l.Apply(trade("RELIANCE", model.Buy, 10, "2500.50")))

	list, err := l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(20), list[0].Quantity)
	assert.True(t, d("2475.50").Equal(list[0].AveragePrice), list[0].AveragePrice.String())
	assert.True(t, d("49010").Equal(list[0].CurrentValue), list[0].CurrentValue.String())
}

func TestLedgerAverageFromExactCost(t *testing.T) {
	l := NewLedger(fixedPrices{"TCS": d("10")})

	require.NoError(t, l.Apply(trade("TCS", model.Buy, 1, "10")))
	require.NoError(t, l.Apply(trade("TCS", model.Buy, 2, "11")))
	require.NoError(t, l.Apply(trade("TCS", model.Buy, 3, "10")))

	list, err := l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(6), list[0].Quantity)
	// 62 / 6，中间的均价舍入不会累积
	want := decimal.NewFromInt(62).Div(decimal.NewFromInt(6))
	assert.True(t, want.Equal(list[0].AveragePrice), list[0].AveragePrice.String())
	assert.Equal(t, "10.3333333333333333", list[0].AveragePrice.String())
}

func TestLedgerSellKeepsAverage(t *testing.T) {
	l := NewLedger(fixedPrices{"INFY": d("1456.20")})

	require.NoError(t, l.Apply(trade("INFY", model.Buy, 10, "1400")))
	require.NoError(t, l.Apply(trade("INFY", model.Buy, 10, "1500")))
	require.NoError(t, l.Apply(trade("INFY", model.Sell, 15, "1456.20")))

	list, err := l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(5), list[0].Quantity)
	assert.True(t, d("1450").Equal(list[0].AveragePrice))
	assert.True(t, d("7281").Equal(list[0].CurrentValue))
}

func TestLedgerSellClosesPosition(t *testing.T) {
	l := NewLedger(fixedPrices{"TCS": d("3890.75"), "HDFC": d("1678.90")})

	require.NoError(t, l.Apply(trade("TCS", model.Buy, 10, "3890.75")))
	require.NoError(t, l.Apply(trade("HDFC", model.Buy, 1, "1678.90")))
	require.NoError(t, l.Apply(trade("TCS", model.Sell, 10, "3890.75")))

	list, err := l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "HDFC", list[0].Symbol)
	assert.Equal(t, int64(0), l.Holding("TCS"))

	// 超卖同样删除持仓，不保留剩余均价
	require.NoError(t, l.Apply(trade("HDFC", model.Sell, 5, "1678.90")))
	list, err = l.Positions()
	require.NoError(t, err)
	assert.Empty(t, list)

	// 重新建仓使用新的成交价
	require.NoError(t, l.Apply(trade("TCS", model.Buy, 2, "3000")))
	list, err = l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, d("3000").Equal(list[0].AveragePrice))
}

func TestLedgerSellWithoutPositionIsNoop(t *testing.T) {
	l := NewLedger(fixedPrices{"TCS": d("3890.75")})

	require.NoError(t, l.Apply(trade("TCS", model.Sell, 3, "3890.75")))
	list, err := l.Positions()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLedgerPriceErrorLeavesStateUntouched(t *testing.T) {
	prices := fixedPrices{"TCS": d("3890.75")}
	l := NewLedger(prices)
	require.NoError(t, l.Apply(trade("TCS", model.Buy, 1, "3890.75")))

	err := l.Apply(trade("GHOST", model.Buy, 1, "10"))
	assert.True(t, errors.Is(err, model.ErrInstrumentNotFound))
	assert.Equal(t, int64(0), l.Holding("GHOST"))

	delete(prices, "TCS")
	err = l.Apply(trade("TCS", model.Buy, 1, "3890.75"))
	assert.Error(t, err)
	assert.Equal(t, int64(1), l.Holding("TCS"))
}

func TestLedgerPositionsInsertionOrder(t *testing.T) {
	l := NewLedger(fixedPrices{"A": d("1"), "B": d("2"), "C": d("3")})
	for _, s := range []string{"B", "C", "A"} {
		require.NoError(t, l.Apply(trade(s, model.Buy, 1, "1")))
	}
	list, err := l.Positions()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"B", "C", "A"}, []string{list[0].Symbol, list[1].Symbol, list[2].Symbol})
}
