package model

import (
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
)

var (
	ErrInstrumentNotFound = errors.WithCode(ecode.NotFoundErr, "Instrument not found")
	ErrOrderNotFound      = errors.WithCode(ecode.NotFoundErr, "Order not found")

	ErrInvalidQuantity    = errors.WithCode(ecode.ValidateErr, "Quantity must be greater than 0")
	ErrLimitPriceRequired = errors.WithCode(ecode.ValidateErr, "Price is mandatory for LIMIT orders")
	ErrInvalidPrice       = errors.WithCode(ecode.ValidateErr, "Price must be greater than 0")
	ErrInvalidOrderType   = errors.WithCode(ecode.ValidateErr, "orderType must be BUY or SELL")
	ErrInvalidOrderStyle  = errors.WithCode(ecode.ValidateErr, "orderStyle must be MARKET or LIMIT")
	ErrSymbolRequired     = errors.WithCode(ecode.ValidateErr, "symbol is required")
	ErrUncoveredSell      = errors.WithCode(ecode.ValidateErr, "Sell quantity exceeds holding")
)
