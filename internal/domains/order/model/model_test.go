package model_test

import (
	"database/sql/driver"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/internal/domains/order/model"
	gModel "hotel/shared/model"
)

// NUMERIC columns come back from lib/pq as []byte and DATE columns as time.Time.
func TestOrder_DriverRoundTrip(t *testing.T) {
	order := model.Order{
		TotalAmount:  decimal.RequireFromString("400.00"),
		CheckInDate:  gModel.MustParseDate("2024-03-01"),
		CheckOutDate: gModel.MustParseDate("2024-03-03"),
	}

	amount, err := order.TotalAmount.Value()
	require.NoError(t, err)

	var scannedAmount decimal.Decimal
	require.NoError(t, scannedAmount.Scan([]byte(amount.(string))))
	assert.True(t, order.TotalAmount.Equal(scannedAmount), "got %s", scannedAmount)
	assert.Equal(t, "400.00", scannedAmount.StringFixed(2))

	checkIn, err := order.CheckInDate.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("2024-03-01"), checkIn)

	var scannedCheckIn gModel.Date
	require.NoError(t, scannedCheckIn.Scan(order.CheckInDate.Time))
	assert.True(t, order.CheckInDate.Equal(scannedCheckIn))
	assert.Equal(t, 2, scannedCheckIn.DaysUntil(order.CheckOutDate))
}

func TestOrderDetail_GetJoinQuery(t *testing.T) {
	query := model.OrderDetail{}.GetJoinQuery()

	assert.Contains(t, query, "JOIN customers ON customers.id = orders.customer_id")
	assert.Contains(t, query, "JOIN rooms ON rooms.id = orders.room_id")
	assert.Contains(t, query, "JOIN hotels ON hotels.id = rooms.hotel_id")
}
