package model

import (
	"fmt"
	"hotel/shared/failure"
	"net/http"
)

var (
	ErrOrderNotFound          = failure.New(http.StatusNotFound, "order not found")
	ErrInvalidStateTransition = failure.New(http.StatusConflict, "invalid order state transition")
	ErrInvalidOrderDates      = failure.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrUnknownStatus          = failure.New(http.StatusBadRequest, "unknown order status")
)

// TransitionError names the rejected pair and unwraps to ErrInvalidStateTransition.
type TransitionError struct {
	From      string
	Operation Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %s", e.Operation, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
