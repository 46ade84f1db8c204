package portfolio

import (
	"tradesdk/internal/service"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
	"tradesdk/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.TradingService
}

func NewHandler(service service.TradingService) *Handler {
	return &Handler{service: service}
}

// PortfolioGetList 当前持仓，市值按最新价重新计算
func (h *Handler) PortfolioGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.ListPositions(ctx)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "持仓计算失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) PortfolioSummary() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.PortfolioSummary(ctx)
		if err != nil {
			response.JSON(ctx, errors.Wrap(err, ecode.Unknown, "持仓计算失败"), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
