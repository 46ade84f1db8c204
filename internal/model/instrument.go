package model

import "github.com/shopspring/decimal"

type InstrumentType string

const (
	Equity  InstrumentType = "EQUITY"
	Futures InstrumentType = "FUTURES"
	Options InstrumentType = "OPTIONS"
)

func (t InstrumentType) Valid() bool {
	switch t {
	case Equity, Futures, Options:
		return true
	}
	return false
}

// Instrument 可交易标的，启动时加载，之后不再变化
type Instrument struct {
	Symbol          string          `json:"symbol"`
	Exchange        string          `json:"exchange"`
	InstrumentType  InstrumentType  `json:"instrumentType"`
	LastTradedPrice decimal.Decimal `json:"lastTradedPrice"` // 最新成交价，也是市价单的成交价
}
