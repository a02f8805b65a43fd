package dto

import (
	"hotel/internal/domains/review/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

var SortableColumns = map[string]string{
	"created_at": "reviews.created_at",
	"rating":     "reviews.rating",
	"hotel_name": "hotels.name",
}

const DefaultSortColumn = "reviews.created_at"

type CreateReviewRequest struct {
	OrderID int64  `json:"order_id" validate:"required,gt=0"`
	Rating  int    `json:"rating"   validate:"required,min=1,max=5"`
	Comment string `json:"comment"  validate:"omitempty,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  int    `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=1000"`
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" validate:"required,max=1000"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type ReviewResponse struct {
	ID           int64  `json:"id"`
	OrderID      int64  `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	HotelID      int64  `json:"hotel_id"`
	HotelName    string `json:"hotel_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Reply        string `json:"reply,omitempty"`
	ReplyAt      *int64 `json:"reply_at,omitempty"`
	ReplyBy      string `json:"reply_by,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.ReviewDetail) {
	r.ID = model.ID
	r.OrderID = model.OrderID
	r.OrderNumber = model.OrderNumber
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Reply = model.Reply
	r.ReplyAt = model.ReplyAt
	r.ReplyBy = model.ReplyBy
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.ReviewDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
