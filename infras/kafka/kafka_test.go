package kafka_test

import (
	"context"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"
)

type payload struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "ORD1", Value: payload{OrderNumber: "ORD1", Status: "confirmed"}}

	out, err := msg.ToKafkaMessage("hotel.order.events")
	require.NoError(t, err)
	assert.Equal(t, "hotel.order.events", out.Topic)
	assert.Equal(t, []byte("ORD1"), out.Key)
	assert.JSONEq(t, `{"order_number":"ORD1","status":"confirmed"}`, string(out.Value))

	decoded, err := kafka.Decode[payload](out)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", decoded.Status)
}

func TestMessage_ToKafkaMessageInvalidValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestClientWithoutBrokers(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k"}), kafka.ErrNoBrokers)
	assert.NoError(t, client.Close())

	// returns immediately instead of blocking on a reader
	client.Consume(context.Background(), "", "topic", func(context.Context, kafkaGo.Message) error { return nil })
}
