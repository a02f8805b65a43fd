package model

import "hotel/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldPhone       = "phone"
	FieldStarLevel   = "star_level"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Hotel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	Phone       string `db:"phone"`
	StarLevel   int    `db:"star_level"`
	Description string `db:"description"`
	Status      string `db:"status"`
	model.Metadata
}
