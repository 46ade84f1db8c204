package kafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *memWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *memWriter) Close() error {
	w.closed = true
	return nil
}

func TestProduceEncodesJSON(t *testing.T) {
	w := &memWriter{}
	p := NewProducerWithWriter(w)

	err := p.Produce(context.Background(), "trades.executed", []byte("TCS"), map[string]any{"symbol": "TCS", "quantity": 10})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "trades.executed", w.msgs[0].Topic)
	assert.Equal(t, []byte("TCS"), w.msgs[0].Key)
	assert.JSONEq(t, `{"symbol":"TCS","quantity":10}`, string(w.msgs[0].Value))
	assert.False(t, w.msgs[0].Time.IsZero())

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProduceMarshalError(t *testing.T) {
	w := &memWriter{}
	p := NewProducerWithWriter(w)
	err := p.Produce(context.Background(), "t", nil, make(chan int))
	assert.Error(t, err)
	assert.Empty(t, w.msgs)
}
