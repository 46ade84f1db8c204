package order

import (
	"tradesdk/internal/model"
	"tradesdk/internal/service"
	"tradesdk/pkg/errors"
	"tradesdk/pkg/errors/ecode"
	"tradesdk/pkg/response"
	"tradesdk/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.TradingService
}

func NewHandler(service service.TradingService) *Handler {
	return &Handler{service: service}
}

// OrderPlace 下单，市价单同步成交后返回
func (h *Handler) OrderPlace() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PlaceOrderReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		res, err := h.service.PlaceOrder(ctx, &req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) OrderDetail() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.OrderDetailReq
		if err := ctx.ShouldBindUri(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, validator.Translate(err)), nil)
			return
		}

		res, err := h.service.GetOrder(ctx, req.OrderId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) OrderGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.ListOrders(ctx)
		response.JSON(ctx, err, res)
	}
}
