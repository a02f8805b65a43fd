package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID           = "id"
	FieldOrderNumber  = "order_number"
	FieldCustomerID   = "customer_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotalAmount  = "total_amount"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"

	// ConflictOrderNumber is the ON CONFLICT target guarding order numbers.
	ConflictOrderNumber = "(order_number)"
)

type Order struct {
	ID           int64           `db:"id"`
	OrderNumber  string          `db:"order_number"`
	CustomerID   int64           `db:"customer_id"`
	RoomID       int64           `db:"room_id"`
	CheckInDate  model.Date      `db:"check_in_date"`
	CheckOutDate model.Date      `db:"check_out_date"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	Status       string          `db:"status"`
	model.Metadata
}

// OrderDetail is an order read together with its customer, room and hotel.
type OrderDetail struct {
	Order
	CustomerName   string `db:"customer_name"    table:"customers" column:"name"`
	CustomerPhone  string `db:"customer_phone"   table:"customers" column:"phone"`
	CustomerEmail  string `db:"customer_email"   table:"customers" column:"email"`
	CustomerIDCard string `db:"customer_id_card" table:"customers" column:"id_card"`
	RoomNumber     string `db:"room_number"      table:"rooms"     column:"room_number"`
	RoomType       string `db:"room_type"        table:"rooms"     column:"room_type"`
	HotelID        int64  `db:"hotel_id"         table:"rooms"     column:"hotel_id"`
	HotelName      string `db:"hotel_name"       table:"hotels"    column:"name"`
	HotelAddress   string `db:"hotel_address"    table:"hotels"    column:"address"`
}

func (OrderDetail) GetJoinQuery() string {
	return "JOIN customers ON customers.id = orders.customer_id " +
		"JOIN rooms ON rooms.id = orders.room_id " +
		"JOIN hotels ON hotels.id = rooms.hotel_id"
}
