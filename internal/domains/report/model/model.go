package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"

	"github.com/shopspring/decimal"
)

var ErrInvalidReportRange = failure.New(http.StatusBadRequest, "end date must not be before start date")

var hundred = decimal.NewFromInt(100)

// Query bounds a report. HotelID zero means every hotel. Both dates are
// inclusive calendar days in the application timezone.
type Query struct {
	HotelID   int64
	StartDate model.Date
	EndDate   model.Date
}

type BookingStatistics struct {
	HotelID           int64           `db:"hotel_id"`
	HotelName         string          `db:"hotel_name"`
	TotalBookings     int             `db:"total_bookings"`
	ConfirmedBookings int             `db:"confirmed_bookings"`
	CheckInCount      int             `db:"check_in_count"`
	CancelledBookings int             `db:"cancelled_bookings"`
	BookedCount       int             `db:"booked_count"`
	BookingRate       decimal.Decimal `db:"-"`
	CheckInRate       decimal.Decimal `db:"-"`
}

// ComputeRates fills the percentages. BookedCount counts confirmed, checked in
// and checked out orders.
func (b *BookingStatistics) ComputeRates() {
	b.BookingRate = Percentage(b.BookedCount, b.TotalBookings)
	b.CheckInRate = Percentage(b.CheckInCount, b.TotalBookings)
}

type RevenueStatistics struct {
	HotelID          int64           `db:"hotel_id"`
	HotelName        string          `db:"hotel_name"`
	Month            string          `db:"month"`
	TotalRevenue     decimal.Decimal `db:"total_revenue"`
	AverageRoomPrice decimal.Decimal `db:"average_room_price"`
	OrderCount       int             `db:"order_count"`
}

type OccupancyStatistics struct {
	HotelID       int64           `db:"hotel_id"`
	HotelName     string          `db:"hotel_name"`
	Date          model.Date      `db:"date"`
	TotalRooms    int             `db:"total_rooms"`
	OccupiedRooms int             `db:"occupied_rooms"`
	OccupancyRate decimal.Decimal `db:"-"`
}

func (o *OccupancyStatistics) ComputeRate() {
	o.OccupancyRate = Percentage(o.OccupiedRooms, o.TotalRooms)
}

// Percentage returns part*100/total rounded to two places, zero when total is zero.
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(part)).Mul(hundred).DivRound(decimal.NewFromInt(int64(total)), 2)
}
