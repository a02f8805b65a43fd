package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	reportMocks "hotel/internal/domains/report/mocks"
	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/domains/report/service"
	"hotel/shared/constant"
	gModel "hotel/shared/model"
)

var march = dto.ReportQuery{StartDate: "2024-03-01", EndDate: "2024-03-31"}

func newService(t *testing.T, bucket string) (service.Report, *reportMocks.MockReport, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)
	repo := reportMocks.NewMockReport(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Report.ArchiveBucket = bucket
	cfg.Report.ArchiveDirectory = "reports"

	return service.New(repo, storage, cfg, mocks.NewOtel()), repo, storage
}

func TestReportService_BookingStatistics(t *testing.T) {
	svc, repo, _ := newService(t, "")

	repo.EXPECT().
		BookingStatistics(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query model.Query) ([]model.BookingStatistics, error) {
			assert.Equal(t, "2024-03-01", query.StartDate.String())
			assert.Equal(t, "2024-03-31", query.EndDate.String())
			assert.Zero(t, query.HotelID)

			return []model.BookingStatistics{
				{HotelID: 1, HotelName: "Grand", TotalBookings: 4, ConfirmedBookings: 1, CheckInCount: 1, CancelledBookings: 1, BookedCount: 3},
				{HotelID: 2, HotelName: "Empty"},
			}, nil
		})

	res, err := svc.BookingStatistics(context.Background(), march)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "75", res[0].BookingRate.String())
	assert.Equal(t, "25", res[0].CheckInRate.String())
	assert.True(t, res[1].BookingRate.IsZero())
}

func TestReportService_InvalidRange(t *testing.T) {
	svc, _, _ := newService(t, "")

	_, err := svc.RevenueStatistics(context.Background(), dto.ReportQuery{StartDate: "2024-03-31", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, model.ErrInvalidReportRange)

	_, err = svc.OccupancyStatistics(context.Background(), dto.ReportQuery{StartDate: "2024-03-01", EndDate: "march"})
	assert.ErrorIs(t, err, model.ErrInvalidReportRange)
}

func TestReportService_OccupancyStatistics(t *testing.T) {
	svc, repo, _ := newService(t, "")

	repo.EXPECT().OccupancyStatistics(gomock.Any(), gomock.Any()).Return([]model.OccupancyStatistics{
		{HotelID: 1, Date: gModel.MustParseDate("2024-03-01"), TotalRooms: 4, OccupiedRooms: 1},
	}, nil)

	res, err := svc.OccupancyStatistics(context.Background(), march)

	require.NoError(t, err)
	assert.Equal(t, "25", res[0].OccupancyRate.String())
	assert.Equal(t, "2024-03-01", res[0].Date.String())
}

func TestReportService_RevenueStatisticsRepositoryError(t *testing.T) {
	svc, repo, _ := newService(t, "")

	repo.EXPECT().RevenueStatistics(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.RevenueStatistics(context.Background(), march)

	assert.ErrorContains(t, err, "failed to get revenue statistics")
}

func TestReportService_ExportRevenueStatistics(t *testing.T) {
	svc, repo, _ := newService(t, "")

	repo.EXPECT().RevenueStatistics(gomock.Any(), gomock.Any()).Return([]model.RevenueStatistics{
		{HotelID: 1, HotelName: "Grand", Month: "2024-03", TotalRevenue: decimal.RequireFromString("1200"), AverageRoomPrice: decimal.RequireFromString("400"), OrderCount: 3},
	}, nil)

	res, err := svc.ExportRevenueStatistics(context.Background(), march)

	require.NoError(t, err)
	assert.Regexp(t, `^revenue_statistics_\d{14}\.xlsx$`, res.FileName)
	assert.Empty(t, res.ArchiveURL)

	book, err := excelize.OpenReader(bytes.NewReader(res.Content))
	require.NoError(t, err)

	defer book.Close()

	rows, err := book.GetRows("Revenue Statistics")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Month", rows[0][2])
	assert.Equal(t, []string{"1", "Grand", "2024-03", "1200", "400", "3"}, rows[1])

	styleID, err := book.GetCellStyle("Revenue Statistics", "A1")
	require.NoError(t, err)

	style, err := book.GetStyle(styleID)
	require.NoError(t, err)
	assert.True(t, style.Font.Bold)
}

func TestReportService_ExportArchivesToBucket(t *testing.T) {
	tests := []struct {
		name      string
		uploadErr error
		wantURL   string
	}{
		{name: "archived", wantURL: "https://cdn.example.com/reports/booking.xlsx"},
		{name: "upload failure still returns the file", uploadErr: errors.New("s3 down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, storage := newService(t, "hotel-reports")

			repo.EXPECT().BookingStatistics(gomock.Any(), gomock.Any()).Return([]model.BookingStatistics{{HotelID: 1, HotelName: "Grand"}}, nil)
			storage.EXPECT().
				UploadFileBytes(gomock.Any(), "hotel-reports", "reports", gomock.Any(), constant.ContentTypeXLSX, gomock.Any()).
				Return(tt.wantURL, tt.uploadErr)

			res, err := svc.ExportBookingStatistics(context.Background(), march)

			require.NoError(t, err)
			assert.NotEmpty(t, res.Content)
			assert.Equal(t, tt.wantURL, res.ArchiveURL)
		})
	}
}
