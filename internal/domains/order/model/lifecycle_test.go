package model_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/order/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/failure"
)

func TestNextStatus_LegalTransitions(t *testing.T) {
	tests := []struct {
		from     string
		op       model.Operation
		wantTo   string
		wantRoom string
	}{
		{model.StatusPending, model.OperationConfirm, model.StatusConfirmed, roomModel.StatusOccupied},
		{model.StatusPending, model.OperationCancel, model.StatusCancelled, roomModel.StatusAvailable},
		{model.StatusConfirmed, model.OperationCancel, model.StatusCancelled, roomModel.StatusAvailable},
		{model.StatusConfirmed, model.OperationCheckIn, model.StatusCheckedIn, ""},
		{model.StatusCheckedIn, model.OperationCheckOut, model.StatusCheckedOut, roomModel.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.from+" "+string(tt.op), func(t *testing.T) {
			next, err := model.NextStatus(tt.from, tt.op)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTo, next.To)
			assert.Equal(t, tt.wantRoom, next.RoomStatus)
		})
	}
}

func TestNextStatus_EveryIllegalPairIsRejected(t *testing.T) {
	legal := map[string][]model.Operation{
		model.StatusPending:   {model.OperationConfirm, model.OperationCancel},
		model.StatusConfirmed: {model.OperationCancel, model.OperationCheckIn},
		model.StatusCheckedIn: {model.OperationCheckOut},
	}

	illegal := 0

	for _, from := range model.Statuses {
		for _, op := range model.Operations {
			if containsOp(legal[from], op) {
				continue
			}

			illegal++

			t.Run(from+" "+string(op), func(t *testing.T) {
				next, err := model.NextStatus(from, op)

				assert.Equal(t, model.Transition{}, next)
				assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))

				var transitionErr *model.TransitionError
				assert.True(t, errors.As(err, &transitionErr))
				assert.Equal(t, from, transitionErr.From)
				assert.Equal(t, op, transitionErr.Operation)
			})
		}
	}

	assert.Equal(t, 15, illegal)
}

func TestNextStatus_UnknownStatus(t *testing.T) {
	_, err := model.NextStatus("archived", model.OperationConfirm)

	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)
}

func TestIsActive(t *testing.T) {
	for _, status := range model.Statuses {
		want := status == model.StatusPending || status == model.StatusConfirmed || status == model.StatusCheckedIn

		assert.Equal(t, want, model.IsActive(status), status)
	}

	assert.ElementsMatch(t, []string{model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn}, model.ActiveStatuses)
}

func TestIsKnownStatus(t *testing.T) {
	for _, status := range model.Statuses {
		assert.True(t, model.IsKnownStatus(status), status)
	}

	assert.False(t, model.IsKnownStatus("archived"))
	assert.False(t, model.IsKnownStatus(""))
}

func TestTransitionError_Message(t *testing.T) {
	err := &model.TransitionError{From: model.StatusCheckedOut, Operation: model.OperationCancel}

	assert.Equal(t, "cannot cancel an order in status checked_out", err.Error())
}

func containsOp(ops []model.Operation, op model.Operation) bool {
	for _, candidate := range ops {
		if candidate == op {
			return true
		}
	}

	return false
}
