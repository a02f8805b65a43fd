package validator_test

import (
	"hotel/shared/validator"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type roomRequest struct {
	RoomNumber string          `validate:"required" json:"room_number"`
	RoomType   string          `validate:"required,oneof=single double suite" json:"room_type"`
	Capacity   int             `validate:"gte=1,lte=10" json:"capacity"`
	Rate       decimal.Decimal `validate:"money" json:"rate"`
	Email      string          `validate:"omitempty,email" json:"email"`
}

type stayRequest struct {
	CheckIn  string `validate:"required,datetime=2006-01-02" json:"check_in_date"`
	CheckOut string `validate:"required,datetime=2006-01-02" json:"check_out_date"`
	Amount   string `validate:"omitempty,money" json:"amount"`
}

func validRoom() *roomRequest {
	return &roomRequest{
		RoomNumber: "7",
		RoomType:   "double",
		Capacity:   2,
		Rate:       decimal.RequireFromString("200.00"),
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *roomRequest)
		expectError bool
	}{
		{name: "valid struct", mutate: func(r *roomRequest) {}, expectError: false},
		{name: "missing required field", mutate: func(r *roomRequest) { r.RoomNumber = "" }, expectError: true},
		{name: "invalid email", mutate: func(r *roomRequest) { r.Email = "invalid-email" }, expectError: true},
		{name: "capacity out of range", mutate: func(r *roomRequest) { r.Capacity = 11 }, expectError: true},
		{name: "invalid room type", mutate: func(r *roomRequest) { r.RoomType = "penthouse" }, expectError: true},
		{name: "zero rate", mutate: func(r *roomRequest) { r.Rate = decimal.Zero }, expectError: true},
		{name: "negative rate", mutate: func(r *roomRequest) { r.Rate = decimal.RequireFromString("-1") }, expectError: true},
		{name: "rate with three decimals", mutate: func(r *roomRequest) { r.Rate = decimal.RequireFromString("10.125") }, expectError: true},
		{name: "rate with trailing zeros", mutate: func(r *roomRequest) { r.Rate = decimal.RequireFromString("10.500") }, expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validRoom()
			tt.mutate(data)

			err := validator.ValidateStruct(data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid date", field: "2024-03-01", tag: "datetime=2006-01-02", expectError: false},
		{name: "invalid date", field: "2024-02-30", tag: "datetime=2006-01-02", expectError: true},
		{name: "valid money string", field: "400.00", tag: "money", expectError: false},
		{name: "invalid money string", field: "abc", tag: "money", expectError: true},
		{name: "valid oneof", field: "confirmed", tag: "oneof=pending confirmed", expectError: false},
		{name: "invalid oneof", field: "invalid", tag: "oneof=pending confirmed", expectError: true},
		{name: "empty accepts zero", field: "", tag: "empty", expectError: false},
		{name: "empty rejects value", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"check_in_date":"2024-03-01","check_out_date":"2024-03-03"}`, expectError: false},
		{name: "invalid date", jsonBody: `{"check_in_date":"03/01/2024","check_out_date":"2024-03-03"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"check_in_date":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data stayRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name     string
		data     *stayRequest
		expected string
	}{
		{
			name:     "required uses json name",
			data:     &stayRequest{CheckOut: "2024-03-03"},
			expected: "check_in_date is required",
		},
		{
			name:     "date format",
			data:     &stayRequest{CheckIn: "2024-03-01", CheckOut: "tomorrow"},
			expected: "check_out_date must be a date formatted as yyyy-MM-dd",
		},
		{
			name:     "money",
			data:     &stayRequest{CheckIn: "2024-03-01", CheckOut: "2024-03-03", Amount: "1.234"},
			expected: "amount must be a positive amount with at most two decimal places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
		})
	}
}
