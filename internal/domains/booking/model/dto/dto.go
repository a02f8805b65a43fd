package dto

import (
	customerModel "hotel/internal/domains/customer/model"
	orderModel "hotel/internal/domains/order/model"
	roomModel "hotel/internal/domains/room/model"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

// SearchAvailableRoomsRequest is read from the query string. Empty filters
// impose no constraint.
type SearchAvailableRoomsRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02" example:"2024-03-03"`
	Location     string `json:"location"       validate:"omitempty,max=255"`
	RoomType     string `json:"room_type"      validate:"omitempty,max=50"`
	HotelName    string `json:"hotel_name"     validate:"omitempty,max=100"`
}

type AvailableRoomResponse struct {
	ID           int64           `json:"id"`
	HotelID      int64           `json:"hotel_id"`
	HotelName    string          `json:"hotel_name"`
	HotelAddress string          `json:"hotel_address"`
	RoomType     string          `json:"room_type"`
	RoomNumber   string          `json:"room_number"`
	Price        decimal.Decimal `json:"price"          swaggertype:"string" example:"200.00"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
}

func (r *AvailableRoomResponse) FromModel(room roomModel.RoomDetail, req SearchAvailableRoomsRequest) {
	r.ID = room.ID
	r.HotelID = room.HotelID
	r.HotelName = room.HotelName
	r.HotelAddress = room.HotelAddress
	r.RoomType = room.RoomType
	r.RoomNumber = room.RoomNumber
	r.Price = room.Price.Round(2)
	r.CheckInDate = req.CheckInDate
	r.CheckOutDate = req.CheckOutDate
}

type BookRoomRequest struct {
	RoomID         int64  `json:"room_id"          validate:"required,gt=0"`
	CustomerName   string `json:"customer_name"    validate:"required,max=100"`
	CustomerPhone  string `json:"customer_phone"   validate:"omitempty,max=20"`
	CustomerEmail  string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerIDCard string `json:"customer_id_card" validate:"omitempty,max=50"`
	CheckInDate    string `json:"check_in_date"    validate:"required,datetime=2006-01-02" example:"2024-03-01"`
	CheckOutDate   string `json:"check_out_date"   validate:"required,datetime=2006-01-02" example:"2024-03-03"`
}

func (b *BookRoomRequest) Identity() customerModel.Identity {
	return customerModel.Identity{
		IDCard: b.CustomerIDCard,
		Name:   b.CustomerName,
		Phone:  b.CustomerPhone,
		Email:  b.CustomerEmail,
	}
}

type BookingResultResponse struct {
	OrderID      int64           `json:"order_id"`
	OrderNumber  string          `json:"order_number"`
	CustomerID   int64           `json:"customer_id"`
	RoomID       int64           `json:"room_id"`
	CheckInDate  gModel.Date     `json:"check_in_date"  swaggertype:"string" example:"2024-03-01"`
	CheckOutDate gModel.Date     `json:"check_out_date" swaggertype:"string" example:"2024-03-03"`
	TotalAmount  decimal.Decimal `json:"total_amount"   swaggertype:"string" example:"400.00"`
	Status       string          `json:"status"`
}

func (r *BookingResultResponse) FromModel(order orderModel.Order) {
	r.OrderID = order.ID
	r.OrderNumber = order.OrderNumber
	r.CustomerID = order.CustomerID
	r.RoomID = order.RoomID
	r.CheckInDate = order.CheckInDate
	r.CheckOutDate = order.CheckOutDate
	r.TotalAmount = order.TotalAmount.Round(2)
	r.Status = order.Status
}
