package trade

import (
	"tradesdk/internal/service"
	"tradesdk/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.TradingService
}

func NewHandler(service service.TradingService) *Handler {
	return &Handler{service: service}
}

// TradeGetList 成交记录，按成交顺序
func (h *Handler) TradeGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.ListTrades(ctx)
		response.JSON(ctx, err, res)
	}
}
