package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/report/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"time"
)

// Report runs read-only aggregates against the read replica.
type Report interface {
	BookingStatistics(ctx context.Context, query model.Query) ([]model.BookingStatistics, error)
	RevenueStatistics(ctx context.Context, query model.Query) ([]model.RevenueStatistics, error)
	OccupancyStatistics(ctx context.Context, query model.Query) ([]model.OccupancyStatistics, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) BookingStatistics(ctx context.Context, query model.Query) ([]model.BookingStatistics, error) {
	return selectRows[model.BookingStatistics](ctx, r, "BookingStatistics", bookingStatisticsQuery, args(query))
}

func (r *repositoryImpl) RevenueStatistics(ctx context.Context, query model.Query) ([]model.RevenueStatistics, error) {
	return selectRows[model.RevenueStatistics](ctx, r, "RevenueStatistics", revenueStatisticsQuery, args(query))
}

func (r *repositoryImpl) OccupancyStatistics(ctx context.Context, query model.Query) ([]model.OccupancyStatistics, error) {
	return selectRows[model.OccupancyStatistics](ctx, r, "OccupancyStatistics", occupancyStatisticsQuery, args(query))
}

// args turns the inclusive date range into an epoch window [start_at, end_at)
// covering whole days in the application timezone.
func args(query model.Query) map[string]any {
	loc := timezone.GetLocation()

	return map[string]any{
		"hotel_id":   query.HotelID,
		"start_date": query.StartDate,
		"end_date":   query.EndDate,
		"start_at":   startOfDay(query.StartDate.Time, loc).Unix(),
		"end_at":     startOfDay(query.EndDate.AddDays(1).Time, loc).Unix(),
		"timezone":   loc.String(),
	}
}

func startOfDay(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

func selectRows[T any](ctx context.Context, r *repositoryImpl, op, query string, args map[string]any) ([]T, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report."+op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []T{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to prepare statement (report): %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to query %s: %w", op, err)
	}

	return rows, nil
}
