package model

import roomModel "hotel/internal/domains/room/model"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Operation is a lifecycle command applied to an order.
type Operation string

const (
	OperationConfirm  Operation = "confirm"
	OperationCancel   Operation = "cancel"
	OperationCheckIn  Operation = "check-in"
	OperationCheckOut Operation = "check-out"
)

// Transition is the outcome of a legal operation. An empty RoomStatus leaves
// the room untouched.
type Transition struct {
	To         string
	RoomStatus string
}

var transitions = map[string]map[Operation]Transition{
	StatusPending: {
		OperationConfirm: {To: StatusConfirmed, RoomStatus: roomModel.StatusOccupied},
		OperationCancel:  {To: StatusCancelled, RoomStatus: roomModel.StatusAvailable},
	},
	StatusConfirmed: {
		OperationCancel:  {To: StatusCancelled, RoomStatus: roomModel.StatusAvailable},
		OperationCheckIn: {To: StatusCheckedIn},
	},
	StatusCheckedIn: {
		OperationCheckOut: {To: StatusCheckedOut, RoomStatus: roomModel.StatusAvailable},
	},
}

// ActiveStatuses hold the room for their date range.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusCheckedIn}

var Statuses = []string{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

var Operations = []Operation{OperationConfirm, OperationCancel, OperationCheckIn, OperationCheckOut}

// NextStatus looks up op in the transition table. Pairs not in the table
// yield a *TransitionError.
func NextStatus(from string, op Operation) (Transition, error) {
	next, ok := transitions[from][op]
	if !ok {
		return Transition{}, &TransitionError{From: from, Operation: op}
	}

	return next, nil
}

func IsActive(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	default:
		return false
	}
}

func IsKnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}
