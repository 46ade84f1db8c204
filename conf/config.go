package conf

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// 配置加载

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Enabled 未配置host时不启用成交审计表
func (d Db) Enabled() bool {
	return d.Host != "" && d.DbName != ""
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

type KafkaConfig struct {
	Broker string `yaml:"broker"`
	Topic  string `yaml:"topic"`
}

// RecorderConfig 成交记录写入本地 json 文件，path为空时不启用
type RecorderConfig struct {
	Path string `yaml:"path"`
}

type TradingConfig struct {
	// 卖出未持有的标的时是否拒单，false 时仅记录成交，不影响持仓
	RejectUncoveredSell bool `yaml:"reject-uncovered-sell"`
	// Idempotency-Key 缓存的最大条数
	IdempotencyCacheSize int `yaml:"idempotency-cache-size"`
}

// InstrumentConfig 启动时加载的可交易标的，价格使用字符串避免浮点误差
type InstrumentConfig struct {
	Symbol          string `yaml:"symbol"`
	Exchange        string `yaml:"exchange"`
	InstrumentType  string `yaml:"instrument-type"`
	LastTradedPrice string `yaml:"last-traded-price"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Title        string `yaml:"title"` // 根路径返回的服务名称
	Version      string `yaml:"version"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Db          `yaml:"database"`
	Log         LogConfig          `yaml:"log"`
	Kafka       KafkaConfig        `yaml:"kafka"`
	Recorder    RecorderConfig     `yaml:"recorder"`
	Trading     TradingConfig      `yaml:"trading"`
	Instruments []InstrumentConfig `yaml:"instruments"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	AppConfig = cfg
	return nil
}

// 环境变量优先于配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("APP_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v, err := cast.ToBoolE(os.Getenv("LOG_CONSOLE")); err == nil && os.Getenv("LOG_CONSOLE") != "" {
		c.Log.Console = v
	}
	if v, err := cast.ToBoolE(os.Getenv("TRADE_REJECT_UNCOVERED_SELL")); err == nil && os.Getenv("TRADE_REJECT_UNCOVERED_SELL") != "" {
		c.Trading.RejectUncoveredSell = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Db.Port = cast.ToString(cast.ToInt(v))
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Db.Username = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Db.DbName = v
	}
	if v := os.Getenv("KAFKA_BROKER"); v != "" {
		c.Kafka.Broker = v
	}
}

func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "tradesdk"
	}
	if c.Title == "" {
		c.Title = "Bajaj Broking Trading SDK"
	}
	if c.Version == "" {
		c.Version = "1.0.0"
	}
	if c.Listen == "" {
		c.Listen = ":8000"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.MaxPingCount <= 0 {
		c.MaxPingCount = 10
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "trades.executed"
	}
	if c.Trading.IdempotencyCacheSize <= 0 {
		c.Trading.IdempotencyCacheSize = 500
	}
}
