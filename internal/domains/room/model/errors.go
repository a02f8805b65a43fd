package model

import (
	"hotel/shared/failure"
	"net/http"
)

var (
	ErrRoomNotFound        = failure.New(http.StatusNotFound, "room not found")
	ErrDuplicateRoomNumber = failure.New(http.StatusConflict, "room number already exists in this hotel")
	ErrRoomInUse           = failure.New(http.StatusConflict, "room is referenced by orders and cannot be deleted")
	ErrHotelNotFound       = failure.New(http.StatusBadRequest, "hotel does not exist")
)
