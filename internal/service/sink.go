package service

import (
	"context"

	"tradesdk/internal/dao"
	"tradesdk/internal/model"
	"tradesdk/pkg/kafka"
	"tradesdk/pkg/recorder"
)

// TradeSink 成交落地（审计文件、数据库、消息队列），在撮合锁之外调用
type TradeSink interface {
	Name() string
	RecordTrade(ctx context.Context, trade model.Trade) error
}

// 写入本地 json 文件
type fileTradeSink struct {
	r *recorder.JSONFileRecorder
}

func NewFileTradeSink(r *recorder.JSONFileRecorder) TradeSink {
	return &fileTradeSink{r: r}
}

func (s *fileTradeSink) Name() string { return "file" }

func (s *fileTradeSink) RecordTrade(ctx context.Context, trade model.Trade) error {
	return s.r.Record(trade)
}

// 写入成交审计表
type dbTradeSink struct {
	d *dao.TradeDao
}

func NewDBTradeSink(d *dao.TradeDao) TradeSink {
	return &dbTradeSink{d: d}
}

func (s *dbTradeSink) Name() string { return "mysql" }

func (s *dbTradeSink) RecordTrade(ctx context.Context, trade model.Trade) error {
	return s.d.InsertTradeRecord(ctx, trade)
}

// 推送成交事件，使用 symbol 作为 key
type kafkaTradeSink struct {
	p     kafka.ProducerService
	topic string
}

func NewKafkaTradeSink(p kafka.ProducerService, topic string) TradeSink {
	return &kafkaTradeSink{p: p, topic: topic}
}

func (s *kafkaTradeSink) Name() string { return "kafka" }

func (s *kafkaTradeSink) RecordTrade(ctx context.Context, trade model.Trade) error {
	return s.p.Produce(ctx, s.topic, []byte(trade.Symbol), trade)
}
