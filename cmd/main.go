package main

import (
	"context"
	"log"

	api "tradesdk/cmd/tradesdk"
	"tradesdk/conf"
	"tradesdk/internal/middleware"
	"tradesdk/pkg/logger"

	"github.com/shopspring/decimal"
)

// 启动模拟交易服务

/*
测试

curl -X POST http://localhost:8000/api/v1/orders \
  -H "Content-Type: application/json" \
  -H "Idempotency-Key: 7f1c2d" \
  -d '{"symbol":"RELIANCE","orderType":"BUY","orderStyle":"MARKET","quantity":10}'

curl http://localhost:8000/api/v1/portfolio
*/

func main() {
	// 加载配置文件
	err := conf.LoadConfig("conf/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := conf.AppConfig
	logger.InitLogger(&appCfg.Log, appCfg.AppName)
	defer logger.Sync()

	// 价格以数字输出
	decimal.MarshalJSONWithoutQuotes = true

	sinks, err := api.InitSinks(context.Background(), &appCfg)
	if err != nil {
		logger.Fatalf("init trade sinks failed: %v", err)
	}

	srvRouter, err := api.InitRouter(&appCfg, sinks.List...)
	if err != nil {
		logger.Fatalf("init router failed: %v", err)
	}

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		if err := sinks.Close(); err != nil {
			logger.Errorf("close trade sinks: %v", err)
		}
	})

	srv.Run(middleware.NewMiddleware(), srvRouter)
}
