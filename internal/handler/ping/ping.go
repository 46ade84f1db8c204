package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Ping() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "\r\nSuccess")
	}
}

type infoResp struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Info 服务基本信息
func Info(name, version string) gin.HandlerFunc {
	resp := infoResp{Message: name, Version: version}
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, resp)
	}
}
