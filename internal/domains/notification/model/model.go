package model

import (
	orderModel "hotel/internal/domains/order/model"
	"hotel/shared/timezone"
	"strconv"
)

type EventType string

const (
	EventBooked          EventType = "booked"
	EventConfirmed       EventType = "confirmed"
	EventCancelled       EventType = "cancelled"
	EventCheckedIn       EventType = "checked_in"
	EventCheckedOut      EventType = "checked_out"
	EventCheckInReminder EventType = "check_in_reminder"
)

// OrderEvent is the payload on the order events topic. Consumers reload the
// order for anything beyond these fields.
type OrderEvent struct {
	Type        EventType `json:"type"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  int64     `json:"occurred_at"`
}

func NewOrderEvent(eventType EventType, order orderModel.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		OccurredAt:  timezone.Now().Unix(),
	}
}

// Key keeps every event of one order on the same partition.
func (e OrderEvent) Key() string {
	return strconv.FormatInt(e.OrderID, 10)
}

// EventForStatus names the event emitted when an order enters status.
func EventForStatus(status string) (EventType, bool) {
	switch status {
	case orderModel.StatusPending:
		return EventBooked, true
	case orderModel.StatusConfirmed:
		return EventConfirmed, true
	case orderModel.StatusCancelled:
		return EventCancelled, true
	case orderModel.StatusCheckedIn:
		return EventCheckedIn, true
	case orderModel.StatusCheckedOut:
		return EventCheckedOut, true
	default:
		return "", false
	}
}
