package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/report/model"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        string
	}{
		{name: "no orders", part: 0, total: 0, want: "0"},
		{name: "all", part: 4, total: 4, want: "100"},
		{name: "half", part: 1, total: 2, want: "50"},
		{name: "rounded", part: 1, total: 3, want: "33.33"},
		{name: "rounded up", part: 2, total: 3, want: "66.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Percentage(tt.part, tt.total)

			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestBookingStatistics_ComputeRates(t *testing.T) {
	stats := model.BookingStatistics{TotalBookings: 8, BookedCount: 6, CheckInCount: 2}
	stats.ComputeRates()

	assert.Equal(t, "75", stats.BookingRate.String())
	assert.Equal(t, "25", stats.CheckInRate.String())
}

func TestOccupancyStatistics_ComputeRate(t *testing.T) {
	stats := model.OccupancyStatistics{TotalRooms: 10, OccupiedRooms: 3}
	stats.ComputeRate()

	assert.Equal(t, "30", stats.OccupancyRate.String())
}
