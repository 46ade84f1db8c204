package router

import (
	"tradesdk/internal/handler/instrument"
	"tradesdk/internal/handler/order"
	"tradesdk/internal/handler/ping"
	"tradesdk/internal/handler/portfolio"
	"tradesdk/internal/handler/trade"
	"tradesdk/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Info struct {
	Name    string
	Version string
}

type ApiRouter struct {
	info                 Info
	idempotencyCacheSize int
	instrumentHandler    *instrument.Handler
	orderHandler         *order.Handler
	tradeHandler         *trade.Handler
	portfolioHandler     *portfolio.Handler
}

func NewApiRouter(info Info, idempotencyCacheSize int, ih *instrument.Handler, oh *order.Handler, th *trade.Handler, ph *portfolio.Handler) *ApiRouter {
	return &ApiRouter{
		info:                 info,
		idempotencyCacheSize: idempotencyCacheSize,
		instrumentHandler:    ih,
		orderHandler:         oh,
		tradeHandler:         th,
		portfolioHandler:     ph,
	}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.GET("/", ping.Info(api.info.Name, api.info.Version))

	base := g.Group("/api/v1")

	base.GET("/instruments", api.instrumentHandler.InstrumentGetAll())

	o := base.Group("/orders")
	{
		// 重复提交同一个 Idempotency-Key 只下一次单
		o.POST("", middleware.Idempotency(api.idempotencyCacheSize), api.orderHandler.OrderPlace())
		o.GET("", api.orderHandler.OrderGetList())
		o.GET("/:id", api.orderHandler.OrderDetail())
	}

	base.GET("/trades", api.tradeHandler.TradeGetList())

	p := base.Group("/portfolio")
	{
		p.GET("", api.portfolioHandler.PortfolioGetList())
		p.GET("/summary", api.portfolioHandler.PortfolioSummary())
	}
}
