package dto

import (
	"fmt"
	"hotel/internal/domains/report/model"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type ReportQuery struct {
	HotelID   int64  `json:"hotel_id"   validate:"omitempty,gte=0"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02" example:"2024-03-31"`
}

func (q *ReportQuery) ToModel() (model.Query, error) {
	start, err := gModel.ParseDate(q.StartDate)
	if err != nil {
		return model.Query{}, fmt.Errorf("%w: %w", model.ErrInvalidReportRange, err)
	}

	end, err := gModel.ParseDate(q.EndDate)
	if err != nil {
		return model.Query{}, fmt.Errorf("%w: %w", model.ErrInvalidReportRange, err)
	}

	if end.Before(start) {
		return model.Query{}, model.ErrInvalidReportRange
	}

	return model.Query{HotelID: q.HotelID, StartDate: start, EndDate: end}, nil
}

type BookingStatisticsResponse struct {
	HotelID           int64           `json:"hotel_id"`
	HotelName         string          `json:"hotel_name"`
	TotalBookings     int             `json:"total_bookings"`
	ConfirmedBookings int             `json:"confirmed_bookings"`
	CheckInCount      int             `json:"check_in_count"`
	CancelledBookings int             `json:"cancelled_bookings"`
	BookingRate       decimal.Decimal `json:"booking_rate"       swaggertype:"string" example:"75.00"`
	CheckInRate       decimal.Decimal `json:"check_in_rate"      swaggertype:"string" example:"25.00"`
}

func (r *BookingStatisticsResponse) FromModel(stats model.BookingStatistics) {
	r.HotelID = stats.HotelID
	r.HotelName = stats.HotelName
	r.TotalBookings = stats.TotalBookings
	r.ConfirmedBookings = stats.ConfirmedBookings
	r.CheckInCount = stats.CheckInCount
	r.CancelledBookings = stats.CancelledBookings
	r.BookingRate = stats.BookingRate
	r.CheckInRate = stats.CheckInRate
}

type RevenueStatisticsResponse struct {
	HotelID          int64           `json:"hotel_id"`
	HotelName        string          `json:"hotel_name"`
	Month            string          `json:"month"              example:"2024-03"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"      swaggertype:"string" example:"1200.00"`
	AverageRoomPrice decimal.Decimal `json:"average_room_price" swaggertype:"string" example:"400.00"`
	OrderCount       int             `json:"order_count"`
}

func (r *RevenueStatisticsResponse) FromModel(stats model.RevenueStatistics) {
	r.HotelID = stats.HotelID
	r.HotelName = stats.HotelName
	r.Month = stats.Month
	r.TotalRevenue = stats.TotalRevenue.Round(2)
	r.AverageRoomPrice = stats.AverageRoomPrice.Round(2)
	r.OrderCount = stats.OrderCount
}

type OccupancyStatisticsResponse struct {
	HotelID       int64           `json:"hotel_id"`
	HotelName     string          `json:"hotel_name"`
	Date          gModel.Date     `json:"date"           swaggertype:"string" example:"2024-03-01"`
	TotalRooms    int             `json:"total_rooms"`
	OccupiedRooms int             `json:"occupied_rooms"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate" swaggertype:"string" example:"30.00"`
}

func (r *OccupancyStatisticsResponse) FromModel(stats model.OccupancyStatistics) {
	r.HotelID = stats.HotelID
	r.HotelName = stats.HotelName
	r.Date = stats.Date
	r.TotalRooms = stats.TotalRooms
	r.OccupiedRooms = stats.OccupiedRooms
	r.OccupancyRate = stats.OccupancyRate
}

// ExportResponse is a rendered workbook. ArchiveURL is empty when archiving
// is disabled or the upload failed.
type ExportResponse struct {
	FileName   string
	Content    []byte
	ArchiveURL string
}
