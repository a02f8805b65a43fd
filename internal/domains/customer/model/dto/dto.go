package dto

import (
	"hotel/internal/domains/customer/model"
	orderModel "hotel/internal/domains/order/model"
	orderDto "hotel/internal/domains/order/model/dto"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

var SortableColumns = map[string]string{
	"created_at": "customers.created_at",
	"name":       "customers.name",
}

const DefaultSortColumn = "customers.created_at"

type CreateCustomerRequest struct {
	Name   string `json:"name"    validate:"required,max=100"`
	Phone  string `json:"phone"   validate:"omitempty,max=20"`
	Email  string `json:"email"   validate:"omitempty,email,max=100"`
	IDCard string `json:"id_card" validate:"omitempty,max=50"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		IDCard:   c.IDCard,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateCustomerRequest struct {
	Name   string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Phone  string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Email  string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	IDCard string `db:"id_card" json:"id_card" validate:"omitempty,max=50"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type CustomerResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	IDCard string `json:"id_card"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.IDCard = model.IDCard
	r.Metadata.FromModel(model.Metadata)
}

// CustomerDetailResponse carries the customer's order history, newest first.
type CustomerDetailResponse struct {
	CustomerResponse
	Orders []orderDto.OrderResponse `json:"orders"`
}

func (r *CustomerDetailResponse) FromModel(customer model.Customer, orders []orderModel.OrderDetail) {
	r.CustomerResponse.FromModel(customer)
	r.Orders = orderDto.FromModels(orders)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
