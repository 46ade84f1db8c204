package api

import (
	"context"

	"tradesdk/conf"
	"tradesdk/internal/dao"
	"tradesdk/internal/exchange"
	"tradesdk/internal/handler/instrument"
	"tradesdk/internal/handler/order"
	"tradesdk/internal/handler/portfolio"
	"tradesdk/internal/handler/trade"
	"tradesdk/internal/router"
	"tradesdk/internal/service"
	"tradesdk/pkg/db"
	"tradesdk/pkg/kafka"
	"tradesdk/pkg/logger"
	"tradesdk/pkg/recorder"

	"go.uber.org/multierr"
)

// Sinks 成交落地以及退出时需要关闭的资源
type Sinks struct {
	List    []service.TradeSink
	closers []func() error
}

// Close 关闭所有资源，合并错误
func (s *Sinks) Close() error {
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c())
	}
	return err
}

// InitSinks 按配置启用成交落地，未配置的跳过
func InitSinks(ctx context.Context, cfg *conf.Config) (*Sinks, error) {
	sinks := &Sinks{}

	if cfg.Recorder.Path != "" {
		sinks.List = append(sinks.List, service.NewFileTradeSink(recorder.NewJSONFileRecorder(cfg.Recorder.Path)))
		logger.Infof("trade recorder enabled, path: %s", cfg.Recorder.Path)
	}

	if cfg.Db.Enabled() {
		datasource, err := db.Open(db.NewConfig(cfg.Db.Username, cfg.Db.Password, cfg.Db.Host, cfg.Db.Port, cfg.Db.DbName))
		if err != nil {
			return nil, multierr.Append(err, sinks.Close())
		}
		sinks.closers = append(sinks.closers, func() error { return db.Close(datasource) })

		d := dao.NewTradeDao(datasource)
		if err := d.AutoMigrate(ctx); err != nil {
			return nil, multierr.Append(err, sinks.Close())
		}
		sinks.List = append(sinks.List, service.NewDBTradeSink(d))
		logger.Infof("trade audit table enabled, db: %s", cfg.Db.DbName)
	}

	if cfg.Kafka.Broker != "" {
		producer := kafka.NewKafkaProducer(cfg.Kafka.Broker)
		sinks.closers = append(sinks.closers, producer.Close)
		sinks.List = append(sinks.List, service.NewKafkaTradeSink(producer, cfg.Kafka.Topic))
		logger.Infof("trade events enabled, broker: %s topic: %s", cfg.Kafka.Broker, cfg.Kafka.Topic)
	}
	return sinks, nil
}

func InitRouter(cfg *conf.Config, sinks ...service.TradeSink) (Router, error) {
	catalog, err := exchange.NewCatalogFromConfig(cfg.Instruments)
	if err != nil {
		return nil, err
	}

	ex := exchange.NewSimulatedExchange(catalog,
		exchange.WithRejectUncoveredSell(cfg.Trading.RejectUncoveredSell))
	ts := service.NewTradingService(ex, sinks...)

	apiRouter := router.NewApiRouter(
		router.Info{Name: cfg.Title, Version: cfg.Version},
		cfg.Trading.IdempotencyCacheSize,
		instrument.NewHandler(ts),
		order.NewHandler(ts),
		trade.NewHandler(ts),
		portfolio.NewHandler(ts),
	)
	return apiRouter, nil
}
