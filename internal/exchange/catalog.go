package exchange

import (
	"strings"

	"tradesdk/conf"
	"tradesdk/internal/model"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"

	"github.com/shopspring/decimal"
)

// Catalog 标的目录，创建后只读，可以无锁并发访问
type Catalog struct {
	list  []model.Instrument
	index map[string]int
}

// NewCatalog 按给定顺序创建标的目录
func NewCatalog(instruments []model.Instrument) (*Catalog, error) {
	c := &Catalog{
		list:  make([]model.Instrument, 0, len(instruments)),
		index: make(map[string]int, len(instruments)),
	}
	for _, item := range instruments {
		item.Symbol = strings.TrimSpace(item.Symbol)
		if item.Symbol == "" {
			return nil, errors.WithCode(ecode.ValidateErr, "instrument symbol is empty")
		}
		if _, ok := c.index[item.Symbol]; ok {
			return nil, errors.WithCodef(ecode.ValidateErr, "duplicate instrument %s", item.Symbol)
		}
		if !item.InstrumentType.Valid() {
			return nil, errors.WithCodef(ecode.ValidateErr, "instrument %s: unknown type %q", item.Symbol, item.InstrumentType)
		}
		if !item.LastTradedPrice.IsPositive() {
			return nil, errors.WithCodef(ecode.ValidateErr, "instrument %s: last traded price must be positive", item.Symbol)
		}
		c.index[item.Symbol] = len(c.list)
		c.list = append(c.list, item)
	}
	return c, nil
}

// NewCatalogFromConfig 从配置加载标的，配置为空时使用默认标的
func NewCatalogFromConfig(items []conf.InstrumentConfig) (*Catalog, error) {
	if len(items) == 0 {
		return NewCatalog(DefaultInstruments())
	}
	list := make([]model.Instrument, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.LastTradedPrice)
		if err != nil {
			return nil, errors.Wrapf(err, ecode.ValidateErr, "instrument %s: bad price %q", item.Symbol, item.LastTradedPrice)
		}
		list = append(list, model.Instrument{
			Symbol:          item.Symbol,
			Exchange:        item.Exchange,
			InstrumentType:  model.InstrumentType(strings.ToUpper(item.InstrumentType)),
			LastTradedPrice: price,
		})
	}
	return NewCatalog(list)
}

// DefaultInstruments 默认的 NSE 股票
func DefaultInstruments() []model.Instrument {
	return []model.Instrument{
		{Symbol: "RELIANCE", Exchange: "NSE", InstrumentType: model.Equity, LastTradedPrice: decimal.RequireFromString("2450.50")},
		{Symbol: "TCS", Exchange: "NSE", InstrumentType: model.Equity, LastTradedPrice: decimal.RequireFromString("3890.75")},
		{Symbol: "INFY", Exchange: "NSE", InstrumentType: model.Equity, LastTradedPrice: decimal.RequireFromString("1456.20")},
		{Symbol: "HDFC", Exchange: "NSE", InstrumentType: model.Equity, LastTradedPrice: decimal.RequireFromString("1678.90")},
		{Symbol: "ICICIBANK", Exchange: "NSE", InstrumentType: model.Equity, LastTradedPrice: decimal.RequireFromString("945.30")},
	}
}

// Lookup 按代码查找标的
func (c *Catalog) Lookup(symbol string) (model.Instrument, error) {
	i, ok := c.index[symbol]
	if !ok {
		return model.Instrument{}, errors.Wrapf(model.ErrInstrumentNotFound, ecode.NotFoundErr, "symbol %s", symbol)
	}
	return c.list[i], nil
}

// LastPrice 最新成交价
func (c *Catalog) LastPrice(symbol string) (decimal.Decimal, error) {
	inst, err := c.Lookup(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return inst.LastTradedPrice, nil
}

// List 按加载顺序返回全部标的，返回的是副本
func (c *Catalog) List() []model.Instrument {
	out := make([]model.Instrument, len(c.list))
	copy(out, c.list)
	return out
}
