package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hotel/shared/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "customers_id_card_key"}

	tests := []struct {
		name       string
		err        error
		constraint []string
		want       bool
	}{
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "unique violation", err: unique, want: true},
		{name: "wrapped unique violation", err: fmt.Errorf("failed to insert: %w", unique), want: true},
		{name: "matching constraint", err: unique, constraint: []string{"customers_id_card_key"}, want: true},
		{name: "other constraint", err: unique, constraint: []string{"rooms_hotel_id_room_number_key"}, want: false},
		{name: "foreign key is not unique", err: &pq.Error{Code: "23503"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsUniqueViolation(tt.err, tt.constraint...))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, repository.IsForeignKeyViolation(fmt.Errorf("failed to delete: %w", &pq.Error{Code: "23503"})))
	assert.False(t, repository.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, repository.IsForeignKeyViolation(nil))
}
