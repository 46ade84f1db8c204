package dao

import (
	"context"

	"tradesdk/internal/model"
	"tradesdk/internal/model/entity"

	"gorm.io/gorm"
)

type TradeDao struct {
	db *gorm.DB
}

func NewTradeDao(db *gorm.DB) *TradeDao {
	return &TradeDao{db: db}
}

// AutoMigrate 创建或更新成交审计表
func (d *TradeDao) AutoMigrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(&entity.TradeRecord{})
}

// InsertTradeRecord 插入成交记录
func (d *TradeDao) InsertTradeRecord(ctx context.Context, trade model.Trade) error {
	return d.db.WithContext(ctx).Create(entity.NewTradeRecord(trade)).Error
}
