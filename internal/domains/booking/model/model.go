package model

import (
	"fmt"
	"hotel/shared/failure"
	"hotel/shared/model"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	orderNumberPrefix    = "ORD"
	orderNumberSuffixLen = 6
)

var (
	ErrRoomUnavailable  = failure.New(http.StatusConflict, "room is not available for the requested dates")
	ErrInvalidDateRange = failure.New(http.StatusBadRequest, "check-out date must be after check-in date")
)

// Stay is the half-open date range [CheckIn, CheckOut).
type Stay struct {
	CheckIn  model.Date
	CheckOut model.Date
}

// NewStay parses both dates and requires at least one night.
func NewStay(checkIn, checkOut string) (Stay, error) {
	in, err := model.ParseDate(checkIn)
	if err != nil {
		return Stay{}, fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
	}

	out, err := model.ParseDate(checkOut)
	if err != nil {
		return Stay{}, fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
	}

	stay := Stay{CheckIn: in, CheckOut: out}
	if stay.Nights() <= 0 {
		return Stay{}, ErrInvalidDateRange
	}

	return stay, nil
}

func (s Stay) Nights() int {
	return s.CheckIn.DaysUntil(s.CheckOut)
}

// Overlaps reports whether two stays share at least one night. A stay ending
// on the day another begins does not overlap it.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && s.CheckOut.After(other.CheckIn)
}

type Quote struct {
	Stay   Stay
	Rate   decimal.Decimal
	Nights int
	Total  decimal.Decimal
}

// ComputeTotal prices a stay at rate per night.
func ComputeTotal(rate decimal.Decimal, checkIn, checkOut string) (Quote, error) {
	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	nights := stay.Nights()

	return Quote{
		Stay:   stay,
		Rate:   rate,
		Nights: nights,
		Total:  rate.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}

// NewOrderNumber builds "ORD" + unix millis + six upper-case hex characters.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderNumberSuffixLen]

	return fmt.Sprintf("%s%d%s", orderNumberPrefix, now.UnixMilli(), strings.ToUpper(suffix))
}
