package instrument

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

// InstrumentGetAll 可交易标的列表，按初始化顺序返回
func (h *Handler) InstrumentGetAll() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.ListInstruments(ctx)
		response.JSON(ctx, err, res)
	}
}
