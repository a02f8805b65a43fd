package consumer

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	notificationService "hotel/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
)

// OrderEvents feeds the order event topic into the notifier.
type OrderEvents struct {
	cfg      *config.Config
	kafka    kafka.Client
	notifier notificationService.Notifier
}

func New(cfg *config.Config, kafka kafka.Client, notifier notificationService.Notifier) *OrderEvents {
	return &OrderEvents{
		cfg:      cfg,
		kafka:    kafka,
		notifier: notifier,
	}
}

// Run blocks until ctx is cancelled.
func (c *OrderEvents) Run(ctx context.Context) {
	topic := c.cfg.Kafka.Topic.OrderEvents

	log.Info().Str("topic", topic).Msg("Starting order event consumer")

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.notifier.Handle)
}
