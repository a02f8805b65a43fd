package dto

import (
	"hotel/internal/domains/hotel/model"
	roomModel "hotel/internal/domains/room/model"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"

	"github.com/shopspring/decimal"
)

type CreateHotelRoomRequest struct {
	RoomType   string          `json:"room_type"   validate:"required,max=50"`
	RoomNumber string          `json:"room_number" validate:"required,max=20"`
	Price      decimal.Decimal `json:"price"       validate:"money"             swaggertype:"string" example:"200.00"`
}

type CreateHotelRequest struct {
	Name        string                   `json:"name"        validate:"required,max=100"`
	Address     string                   `json:"address"     validate:"required,max=255"`
	Phone       string                   `json:"phone"       validate:"omitempty,max=20"`
	StarLevel   int                      `json:"star_level"  validate:"gte=1,lte=5"`
	Description string                   `json:"description" validate:"omitempty,max=1000"`
	Status      string                   `json:"status"      validate:"omitempty,oneof=active inactive"`
	RoomTypes   []CreateHotelRoomRequest `json:"room_types"  validate:"omitempty,dive"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	return model.Hotel{
		Name:        c.Name,
		Address:     c.Address,
		Phone:       c.Phone,
		StarLevel:   c.StarLevel,
		Description: c.Description,
		Status:      status,
		Metadata:    gModel.NewMetadata(user),
	}
}

// ToRoomModels builds the rooms created together with the hotel. They start available.
func (c *CreateHotelRequest) ToRoomModels(hotelID int64, user string) []roomModel.Room {
	rooms := make([]roomModel.Room, len(c.RoomTypes))

	for i, room := range c.RoomTypes {
		rooms[i] = roomModel.Room{
			HotelID:    hotelID,
			RoomType:   room.RoomType,
			RoomNumber: room.RoomNumber,
			Price:      room.Price,
			Status:     roomModel.StatusAvailable,
			Metadata:   gModel.NewMetadata(user),
		}
	}

	return rooms
}

type UpdateHotelRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=255"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	StarLevel   *int   `db:"star_level"  json:"star_level"  validate:"omitempty,gte=1,lte=5"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Status      string `db:"status"      json:"status"      validate:"omitempty,oneof=active inactive"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type HotelResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	StarLevel   int    `json:"star_level"`
	Description string `json:"description"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.Phone = model.Phone
	r.StarLevel = model.StarLevel
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

func (r *HotelDetailResponse) FromModel(hotel model.Hotel, rooms []roomModel.RoomDetail) {
	r.HotelResponse.FromModel(hotel)

	r.Rooms = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
