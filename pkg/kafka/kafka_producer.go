package kafka

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// Kafka 生产者服务
// 定义接口，方便测试和替换
type ProducerService interface {
	Produce(ctx context.Context, topic string, key []byte, msg any) error
	Close() error
}

// MessageWriter kafka.Writer 的最小接口
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaProducer struct {
	writer MessageWriter
}

func NewKafkaProducer(brokerURL string) ProducerService {
	// 不指定 Topic，由每条消息指定
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokerURL),
		Balancer:               &kafka.Hash{}, // 相同 key 进入同一个 Partition，保证同一标的的成交有序
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewProducerWithWriter(writer)
}

func NewProducerWithWriter(w MessageWriter) ProducerService {
	return &kafkaProducer{writer: w}
}

// Produce 序列化为 json 并写入 Kafka
func (p *kafkaProducer) Produce(ctx context.Context, topic string, key []byte, msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: data,
		Time:  time.Now(),
	})
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
