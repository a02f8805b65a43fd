package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	HotelID    int64           `json:"hotel_id"    validate:"required,gt=0"`
	RoomType   string          `json:"room_type"   validate:"required,max=50"`
	RoomNumber string          `json:"room_number" validate:"required,max=20"`
	Price      decimal.Decimal `json:"price"       validate:"money"                                        swaggertype:"string" example:"200.00"`
	Status     string          `json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		HotelID:    c.HotelID,
		RoomType:   c.RoomType,
		RoomNumber: c.RoomNumber,
		Price:      c.Price,
		Status:     status,
		Metadata:   gModel.NewMetadata(user),
	}
}

// UpdateRoomRequest is a partial update. Price is a pointer so that the zero
// decimal is not mistaken for "unset".
type UpdateRoomRequest struct {
	RoomType   string           `db:"room_type"   json:"room_type"   validate:"omitempty,max=50"`
	RoomNumber string           `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Price      *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty,money"                                  swaggertype:"string" example:"250.00"`
	Status     string           `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type RoomResponse struct {
	ID           int64           `json:"id"`
	HotelID      int64           `json:"hotel_id"`
	HotelName    string          `json:"hotel_name,omitempty"`
	HotelAddress string          `json:"hotel_address,omitempty"`
	RoomType     string          `json:"room_type"`
	RoomNumber   string          `json:"room_number"`
	Price        decimal.Decimal `json:"price"                   swaggertype:"string" example:"200.00"`
	Status       string          `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.RoomDetail) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.HotelAddress = model.HotelAddress
	r.RoomType = model.RoomType
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price.Round(2)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.RoomDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
