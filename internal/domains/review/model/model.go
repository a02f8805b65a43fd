package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldOrderID    = "order_id"
	FieldCustomerID = "customer_id"
	FieldHotelID    = "hotel_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldReply      = "reply"
	FieldReplyAt    = "reply_at"
	FieldReplyBy    = "reply_by"
	FieldCreatedAt  = "created_at"
)

var (
	ErrReviewNotFound       = failure.New(http.StatusNotFound, "review not found")
	ErrOrderAlreadyReviewed = failure.New(http.StatusConflict, "order has already been reviewed")
	ErrOrderNotReviewable   = failure.New(http.StatusBadRequest, "only checked-out orders can be reviewed")
	ErrOrderNotFound        = failure.New(http.StatusBadRequest, "order does not exist")
)

type Review struct {
	ID         int64  `db:"id"`
	OrderID    int64  `db:"order_id"`
	CustomerID int64  `db:"customer_id"`
	HotelID    int64  `db:"hotel_id"`
	Rating     int    `db:"rating"`
	Comment    string `db:"comment"`
	Reply      string `db:"reply"`
	ReplyAt    *int64 `db:"reply_at"`
	ReplyBy    string `db:"reply_by"`
	model.Metadata
}

// ReviewDetail is a review read together with its order, customer and hotel.
type ReviewDetail struct {
	Review
	OrderNumber  string `db:"order_number"  table:"orders"    column:"order_number"`
	CustomerName string `db:"customer_name" table:"customers" column:"name"`
	HotelName    string `db:"hotel_name"    table:"hotels"    column:"name"`
}

func (ReviewDetail) GetJoinQuery() string {
	return "JOIN orders ON orders.id = reviews.order_id " +
		"JOIN customers ON customers.id = reviews.customer_id " +
		"JOIN hotels ON hotels.id = reviews.hotel_id"
}
