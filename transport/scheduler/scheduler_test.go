package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	notificationMocks "hotel/internal/domains/notification/mocks"
	"hotel/transport/scheduler"
)

func TestScheduler_SendCheckInReminders(t *testing.T) {
	tests := []struct {
		name  string
		count int
		err   error
	}{
		{name: "publishes reminders", count: 3},
		{name: "repository failure is logged", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := notificationMocks.NewMockNotifier(ctrl)

			notifier.EXPECT().PublishCheckInReminders(gomock.Any()).Return(tt.count, tt.err)

			s := scheduler.New(&config.Config{}, notifier, mocks.NewOtel())

			assert.NotPanics(t, func() { s.SendCheckInReminders(context.Background()) })
		})
	}
}

func TestScheduler_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notificationMocks.NewMockNotifier(ctrl)

	s := scheduler.New(&config.Config{}, notifier, mocks.NewOtel())

	assert.NoError(t, s.Start(context.Background()))
}

func TestScheduler_StartEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notificationMocks.NewMockNotifier(ctrl)

	cfg := &config.Config{}
	cfg.Scheduler.Enable = true
	cfg.Scheduler.ReminderHour = 9

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := scheduler.New(cfg, notifier, mocks.NewOtel())

	assert.NoError(t, s.Start(ctx))
}
