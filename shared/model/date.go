package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const hoursPerDay = 24

// Date is a calendar date without time of day, always held at UTC midnight.
type Date struct {
	time.Time
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{parsed}, nil
}

func MustParseDate(value string) Date {
	date, err := ParseDate(value)
	if err != nil {
		panic(err)
	}

	return date
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(time.DateOnly)
}

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time).Hours() / hoursPerDay)
}

func (d Date) AddDays(days int) Date {
	return Date{d.AddDate(0, 0, days)}
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// Value writes the date as yyyy-MM-dd so the column never goes through a
// timestamp conversion in the session time zone.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(value)
	case []byte:
		return d.parse(string(value))
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}

	return nil
}

func (d *Date) parse(value string) error {
	if len(value) > len(time.DateOnly) {
		value = value[:len(time.DateOnly)]
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	if value == "" {
		*d = Date{}

		return nil
	}

	return d.parse(value)
}
