package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/repository"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	reportBooking   = "booking_statistics"
	reportRevenue   = "revenue_statistics"
	reportOccupancy = "occupancy_statistics"
)

type Report interface {
	BookingStatistics(ctx context.Context, req dto.ReportQuery) ([]dto.BookingStatisticsResponse, error)
	RevenueStatistics(ctx context.Context, req dto.ReportQuery) ([]dto.RevenueStatisticsResponse, error)
	OccupancyStatistics(ctx context.Context, req dto.ReportQuery) ([]dto.OccupancyStatisticsResponse, error)

	ExportBookingStatistics(ctx context.Context, req dto.ReportQuery) (dto.ExportResponse, error)
	ExportRevenueStatistics(ctx context.Context, req dto.ReportQuery) (dto.ExportResponse, error)
	ExportOccupancyStatistics(ctx context.Context, req dto.ReportQuery) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo repository.Report
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Report, s3 s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		repo: repo,
		s3:   s3,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) BookingStatistics(ctx context.Context, req dto.ReportQuery) (res []dto.BookingStatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.BookingStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.bookingStatistics(ctx, req)
	if err != nil {
		return nil, err
	}

	res = make([]dto.BookingStatisticsResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res, nil
}

func (s *serviceImpl) RevenueStatistics(ctx context.Context, req dto.ReportQuery) (res []dto.RevenueStatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.RevenueStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.revenueStatistics(ctx, req)
	if err != nil {
		return nil, err
	}

	res = make([]dto.RevenueStatisticsResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res, nil
}

func (s *serviceImpl) OccupancyStatistics(ctx context.Context, req dto.ReportQuery) (res []dto.OccupancyStatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.OccupancyStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.occupancyStatistics(ctx, req)
	if err != nil {
		return nil, err
	}

	res = make([]dto.OccupancyStatisticsResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res, nil
}

func (s *serviceImpl) ExportBookingStatistics(ctx context.Context, req dto.ReportQuery) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportBookingStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.bookingStatistics(ctx, req)
	if err != nil {
		return res, err
	}

	book := sheet{
		name: "Booking Statistics",
		headers: []string{
			"Hotel ID", "Hotel Name", "Total Bookings", "Confirmed", "Checked In", "Cancelled", "Booking Rate (%)", "Check-in Rate (%)",
		},
	}

	for _, row := range rows {
		book.rows = append(book.rows, []any{
			row.HotelID, row.HotelName, row.TotalBookings, row.ConfirmedBookings, row.CheckInCount, row.CancelledBookings,
			row.BookingRate.InexactFloat64(), row.CheckInRate.InexactFloat64(),
		})
	}

	return s.export(ctx, reportBooking, book)
}

func (s *serviceImpl) ExportRevenueStatistics(ctx context.Context, req dto.ReportQuery) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportRevenueStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.revenueStatistics(ctx, req)
	if err != nil {
		return res, err
	}

	book := sheet{
		name:    "Revenue Statistics",
		headers: []string{"Hotel ID", "Hotel Name", "Month", "Total Revenue", "Average Room Price", "Orders"},
	}

	for _, row := range rows {
		book.rows = append(book.rows, []any{
			row.HotelID, row.HotelName, row.Month,
			row.TotalRevenue.Round(2).InexactFloat64(), row.AverageRoomPrice.Round(2).InexactFloat64(), row.OrderCount,
		})
	}

	return s.export(ctx, reportRevenue, book)
}

func (s *serviceImpl) ExportOccupancyStatistics(ctx context.Context, req dto.ReportQuery) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.ExportOccupancyStatistics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.occupancyStatistics(ctx, req)
	if err != nil {
		return res, err
	}

	book := sheet{
		name:    "Occupancy Statistics",
		headers: []string{"Hotel ID", "Hotel Name", "Date", "Total Rooms", "Occupied Rooms", "Occupancy Rate (%)"},
	}

	for _, row := range rows {
		book.rows = append(book.rows, []any{
			row.HotelID, row.HotelName, row.Date.String(), row.TotalRooms, row.OccupiedRooms, row.OccupancyRate.InexactFloat64(),
		})
	}

	return s.export(ctx, reportOccupancy, book)
}

func (s *serviceImpl) bookingStatistics(ctx context.Context, req dto.ReportQuery) ([]model.BookingStatistics, error) {
	query, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.BookingStatistics(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking statistics")

		return nil, fmt.Errorf("failed to get booking statistics: %w", err)
	}

	for i := range rows {
		rows[i].ComputeRates()
	}

	return rows, nil
}

func (s *serviceImpl) revenueStatistics(ctx context.Context, req dto.ReportQuery) ([]model.RevenueStatistics, error) {
	query, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.RevenueStatistics(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue statistics")

		return nil, fmt.Errorf("failed to get revenue statistics: %w", err)
	}

	return rows, nil
}

func (s *serviceImpl) occupancyStatistics(ctx context.Context, req dto.ReportQuery) ([]model.OccupancyStatistics, error) {
	query, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.OccupancyStatistics(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy statistics")

		return nil, fmt.Errorf("failed to get occupancy statistics: %w", err)
	}

	for i := range rows {
		rows[i].ComputeRate()
	}

	return rows, nil
}

// export renders the workbook and, when an archive bucket is configured,
// keeps a copy in object storage. A failed upload never fails the download.
func (s *serviceImpl) export(ctx context.Context, report string, book sheet) (res dto.ExportResponse, err error) {
	res.Content, err = book.render()
	if err != nil {
		log.Error().Err(err).Str("report", report).Msg("failed to render report")

		return res, fmt.Errorf("failed to render report: %w", err)
	}

	res.FileName = fmt.Sprintf("%s_%s.xlsx", report, timezone.Now().Format("20060102150405"))

	bucket := s.cfg.Report.ArchiveBucket
	if bucket == "" {
		return res, nil
	}

	url, err := s.s3.UploadFileBytes(ctx, bucket, s.cfg.Report.ArchiveDirectory, res.FileName, constant.ContentTypeXLSX, res.Content)
	if err != nil {
		log.Warn().Err(err).Str("report", report).Msg("failed to archive report")

		return res, nil
	}

	res.ArchiveURL = url

	return res, nil
}
