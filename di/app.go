package di

import (
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/transport/consumer"
	"hotel/transport/http"
	"hotel/transport/scheduler"
)

// App is everything cmd/app starts and later closes.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Consumer  *consumer.OrderEvents
	Otel      otel.Otel
	Kafka     kafka.Client
	DB        *postgres.Connection
}
