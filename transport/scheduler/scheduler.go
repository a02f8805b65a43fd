package scheduler

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	notificationService "hotel/internal/domains/notification/service"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const checkInReminderJob = "check-in-reminder"

type Scheduler struct {
	cfg      *config.Config
	notifier notificationService.Notifier
	otel     otel.Otel
}

func New(cfg *config.Config, notifier notificationService.Notifier, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		notifier: notifier,
		otel:     otel,
	}
}

// Start registers the daily jobs in the application timezone and stops them
// when ctx is cancelled. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.cfg.Scheduler.Enable {
		log.Info().Msg("Scheduler disabled")

		return nil
	}

	cron, err := gocron.NewScheduler(gocron.WithLocation(timezone.GetLocation()))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = cron.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(s.cfg.Scheduler.ReminderHour, 0, 0),
			),
		),
		gocron.NewTask(func() { s.SendCheckInReminders(ctx) }),
		gocron.WithName(checkInReminderJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register %s job: %w", checkInReminderJob, err)
	}

	cron.Start()

	log.Info().Uint("hour", s.cfg.Scheduler.ReminderHour).Msg("Check-in reminder scheduler started")

	go func() {
		<-ctx.Done()

		if err := cron.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to stop scheduler")
		}
	}()

	return nil
}

// SendCheckInReminders is the body of the daily reminder job.
func (s *Scheduler) SendCheckInReminders(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+"."+checkInReminderJob)
	defer scope.End()

	count, err := s.notifier.PublishCheckInReminders(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish check-in reminders")

		return
	}

	log.Info().Int("count", count).Msg("check-in reminders published")
}
