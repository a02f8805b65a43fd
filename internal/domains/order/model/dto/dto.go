package dto

import (
	"hotel/internal/domains/order/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

// SortableColumns maps accepted sort_by keys to qualified columns.
var SortableColumns = map[string]string{
	"created_at":     "orders.created_at",
	"check_in_date":  "orders.check_in_date",
	"check_out_date": "orders.check_out_date",
	"total_amount":   "orders.total_amount",
	"order_number":   "orders.order_number",
	"status":         "orders.status",
}

const DefaultSortColumn = "orders.created_at"

// UpdateOrderRequest is the administrative override. Dates are yyyy-MM-dd.
type UpdateOrderRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"                                   example:"2024-03-01"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"                                   example:"2024-03-03"`
	Status       string `json:"status"         validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

type OrderResponse struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerID     int64           `json:"customer_id"`
	CustomerName   string          `json:"customer_name,omitempty"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	RoomID         int64           `json:"room_id"`
	RoomNumber     string          `json:"room_number,omitempty"`
	RoomType       string          `json:"room_type,omitempty"`
	HotelID        int64           `json:"hotel_id,omitempty"`
	HotelName      string          `json:"hotel_name,omitempty"`
	CheckInDate    gModel.Date     `json:"check_in_date"            swaggertype:"string" example:"2024-03-01"`
	CheckOutDate   gModel.Date     `json:"check_out_date"           swaggertype:"string" example:"2024-03-03"`
	Nights         int             `json:"nights"`
	TotalAmount    decimal.Decimal `json:"total_amount"             swaggertype:"string" example:"400.00"`
	Status         string          `json:"status"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.OrderDetail) {
	r.ID = model.ID
	r.OrderNumber = model.OrderNumber
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.CustomerPhone = model.CustomerPhone
	r.CustomerEmail = model.CustomerEmail
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.Nights = model.CheckInDate.DaysUntil(model.CheckOutDate)
	r.TotalAmount = model.TotalAmount.Round(2)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.OrderDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = FromModels(models)
}

func FromModels(models []model.OrderDetail) []OrderResponse {
	orders := make([]OrderResponse, len(models))
	for i, mod := range models {
		orders[i].FromModel(mod)
	}

	return orders
}
