package model

import (
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomType   = "room_type"
	FieldRoomNumber = "room_number"
	FieldPrice      = "price"
	FieldStatus     = "status"
	FieldCreatedAt  = "created_at"
)

// Room status is a cached availability flag. Whether a room can be booked for
// a given stay is decided by its overlapping orders.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         int64           `db:"id"`
	HotelID    int64           `db:"hotel_id"`
	RoomType   string          `db:"room_type"`
	RoomNumber string          `db:"room_number"`
	Price      decimal.Decimal `db:"price"`
	Status     string          `db:"status"`
	model.Metadata
}

// RoomDetail is a room read together with its hotel.
type RoomDetail struct {
	Room
	HotelName    string `db:"hotel_name"    table:"hotels" column:"name"`
	HotelAddress string `db:"hotel_address" table:"hotels" column:"address"`
}

func (RoomDetail) GetJoinQuery() string {
	return "JOIN hotels ON hotels.id = rooms.hotel_id"
}
