package model

import (
	"hotel/shared/failure"
	"net/http"
)

var (
	ErrHotelNotFound       = failure.New(http.StatusNotFound, "hotel not found")
	ErrDuplicateRoomNumber = failure.New(http.StatusConflict, "room numbers must be unique within a hotel")
)
