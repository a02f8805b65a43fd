package model

import (
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
	FieldCreatedAt = "created_at"
)

var (
	ErrUserNotFound  = failure.New(http.StatusNotFound, "user not found")
	ErrUsernameTaken = failure.New(http.StatusConflict, "username already registered")
)

// User is a staff account. Guests never log in.
type User struct {
	ID        int64  `db:"id"`
	Username  string `db:"username"`
	Password  string `db:"password"`
	Role      string `db:"role"`
	Active    bool   `db:"active"`
	LastLogin *int64 `db:"last_login"`
	model.Metadata
}
