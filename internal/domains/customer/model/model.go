package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldEmail     = "email"
	FieldIDCard    = "id_card"
	FieldCreatedAt = "created_at"

	// ConflictIDCard matches the partial unique index on non-empty id cards.
	ConflictIDCard = "(id_card) WHERE id_card <> ''"
)

var (
	ErrCustomerNotFound  = failure.New(http.StatusNotFound, "customer not found")
	ErrDuplicateIdentity = failure.New(http.StatusConflict, "a customer with this id card already exists")
)

type Customer struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
	Email  string `db:"email"`
	IDCard string `db:"id_card"`
	model.Metadata
}

// Identity is what a guest supplies when booking. An empty IDCard always
// creates a new customer.
type Identity struct {
	IDCard string
	Name   string
	Phone  string
	Email  string
}

func (i Identity) ToModel(user string) Customer {
	return Customer{
		Name:     i.Name,
		Phone:    i.Phone,
		Email:    i.Email,
		IDCard:   i.IDCard,
		Metadata: model.NewMetadata(user),
	}
}
