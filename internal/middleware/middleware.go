package middleware

import (
	"tradesdk/internal/handler/ping"

	"github.com/gin-gonic/gin"
)

// Middleware 全局中间件，同时注册不需要走业务路由的接口
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) Load(g *gin.Engine) {
	g.Use(gin.Recovery(), RequestId(), Logger, NoCache(), Options(), Secure())
	// 健康检查，启动时的 Ping 依赖该接口
	g.GET("/ping", ping.Ping())
}
