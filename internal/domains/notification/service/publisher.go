package service

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Publisher emits order events. Publish never blocks the caller and never
// fails it: events are best effort and sent after the transaction commits.
type Publisher interface {
	Publish(ctx context.Context, events ...model.OrderEvent)
}

type publisherImpl struct {
	kafka kafka.Client
	topic string
	otel  otel.Otel
}

func NewPublisher(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		kafka: kafka,
		topic: cfg.Kafka.Topic.OrderEvents,
		otel:  otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...model.OrderEvent) {
	if len(events) == 0 || !p.kafka.Enabled() {
		return
	}

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		messages[i] = kafka.Message{Key: event.Key(), Value: event}
	}

	go func() {
		c, scope := p.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		if err := p.kafka.SendMessages(c, p.topic, messages...); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("type", string(events[0].Type)).Int("count", len(events)).Msg("failed to publish order events")
		}
	}()
}
