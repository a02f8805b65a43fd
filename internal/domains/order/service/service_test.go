package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	notificationMocks "hotel/internal/domains/notification/mocks"
	notificationModel "hotel/internal/domains/notification/model"
	orderMocks "hotel/internal/domains/order/mocks"
	"hotel/internal/domains/order/model"
	"hotel/internal/domains/order/model/dto"
	"hotel/internal/domains/order/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/repository"
	txMocks "hotel/shared/repository/mocks"
)

type fixture struct {
	repo      *orderMocks.MockOrder
	roomRepo  *roomMocks.MockRoom
	tx        *txMocks.MockTransactor
	publisher *notificationMocks.MockPublisher
	svc       service.Order
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      orderMocks.NewMockOrder(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		tx:        txMocks.NewMockTransactor(ctrl),
		publisher: notificationMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.roomRepo, f.tx, f.publisher, mocks.NewOtel())

	return f
}

func passThroughTx(_ context.Context, fn repository.TxFunc) error {
	return fn(context.Background(), nil)
}

// store mimics the two rows touched by lifecycle operations.
type store struct {
	order model.Order
	room  roomModel.Room
}

func (st *store) expect(f fixture) {
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx).AnyTimes()
	f.repo.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *sqlx.Tx, gDto.FilterGroup, ...string) (model.Order, error) {
			return st.order, nil
		}).
		AnyTimes()
	f.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			st.order.Status, _ = fields[model.FieldStatus].(string)

			return nil
		}).
		AnyTimes()
	f.roomRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			st.room.Status, _ = fields[roomModel.FieldStatus].(string)

			return nil
		}).
		AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
}

func pendingOrderOnRoom7() *store {
	return &store{
		order: model.Order{
			ID:           1,
			OrderNumber:  "ORD1709251200000ABC123",
			CustomerID:   5,
			RoomID:       7,
			CheckInDate:  gModel.MustParseDate("2024-03-01"),
			CheckOutDate: gModel.MustParseDate("2024-03-03"),
			TotalAmount:  decimal.RequireFromString("400.00"),
			Status:       model.StatusPending,
		},
		room: roomModel.Room{ID: 7, Price: decimal.RequireFromString("200.00"), Status: roomModel.StatusAvailable},
	}
}

func TestOrderService_ConfirmCheckInCheckOut(t *testing.T) {
	f := newFixture(t)
	st := pendingOrderOnRoom7()
	st.expect(f)

	ctx := context.Background()

	assert.NoError(t, f.svc.Confirm(ctx, 1))
	assert.Equal(t, model.StatusConfirmed, st.order.Status)
	assert.Equal(t, roomModel.StatusOccupied, st.room.Status)

	assert.NoError(t, f.svc.CheckIn(ctx, 1))
	assert.Equal(t, model.StatusCheckedIn, st.order.Status)
	assert.Equal(t, roomModel.StatusOccupied, st.room.Status)

	assert.NoError(t, f.svc.CheckOut(ctx, 1))
	assert.Equal(t, model.StatusCheckedOut, st.order.Status)
	assert.Equal(t, roomModel.StatusAvailable, st.room.Status)
}

func TestOrderService_CheckInPendingOrderIsRejected(t *testing.T) {
	f := newFixture(t)
	st := pendingOrderOnRoom7()

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)

	err := f.svc.CheckIn(context.Background(), 1)

	assert.ErrorIs(t, err, model.ErrInvalidStateTransition)

	var transitionErr *model.TransitionError
	assert.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, model.StatusPending, transitionErr.From)
	assert.Equal(t, model.OperationCheckIn, transitionErr.Operation)
	assert.Equal(t, model.StatusPending, st.order.Status)
}

func TestOrderService_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		run       func(service.Order) error
		wantRoom  string
		wantEvent notificationModel.EventType
		wantErr   error
	}{
		{
			name:      "cancel pending frees the room",
			from:      model.StatusPending,
			run:       func(s service.Order) error { return s.Cancel(context.Background(), 1) },
			wantRoom:  roomModel.StatusAvailable,
			wantEvent: notificationModel.EventCancelled,
		},
		{
			name:      "cancel confirmed frees the room",
			from:      model.StatusConfirmed,
			run:       func(s service.Order) error { return s.Cancel(context.Background(), 1) },
			wantRoom:  roomModel.StatusAvailable,
			wantEvent: notificationModel.EventCancelled,
		},
		{
			name:    "cancel checked in",
			from:    model.StatusCheckedIn,
			run:     func(s service.Order) error { return s.Cancel(context.Background(), 1) },
			wantErr: model.ErrInvalidStateTransition,
		},
		{
			name:    "confirm cancelled",
			from:    model.StatusCancelled,
			run:     func(s service.Order) error { return s.Confirm(context.Background(), 1) },
			wantErr: model.ErrInvalidStateTransition,
		},
		{
			name:    "check out confirmed",
			from:    model.StatusConfirmed,
			run:     func(s service.Order) error { return s.CheckOut(context.Background(), 1) },
			wantErr: model.ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			st := pendingOrderOnRoom7()
			st.order.Status = tt.from
			st.room.Status = roomModel.StatusOccupied

			f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)

			if tt.wantErr == nil {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.roomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						st.room.Status, _ = fields[roomModel.FieldStatus].(string)

						return nil
					})
				f.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, events ...notificationModel.OrderEvent) {
						assert.Len(t, events, 1)
						assert.Equal(t, tt.wantEvent, events[0].Type)
						assert.Equal(t, int64(1), events[0].OrderID)
					})
			}

			err := tt.run(f.svc)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, roomModel.StatusOccupied, st.room.Status)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRoom, st.room.Status)
		})
	}
}

func TestOrderService_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

	assert.ErrorIs(t, f.svc.Confirm(context.Background(), 404), model.ErrOrderNotFound)
}

func TestOrderService_RoomUpdateFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	st := pendingOrderOnRoom7()

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.roomRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := f.svc.Confirm(context.Background(), 1)

	assert.ErrorContains(t, err, "failed to update room status")
}

func TestOrderService_Get(t *testing.T) {
	f := newFixture(t)

	t.Run("found", func(t *testing.T) {
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.OrderDetail{
			Order: model.Order{
				ID:           1,
				CheckInDate:  gModel.MustParseDate("2024-03-01"),
				CheckOutDate: gModel.MustParseDate("2024-03-03"),
				TotalAmount:  decimal.RequireFromString("400"),
			},
			CustomerName: "Alice",
			HotelName:    "Grand",
		}, nil)

		res, err := f.svc.Get(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, "400", res.TotalAmount.String())
		assert.Equal(t, "Alice", res.CustomerName)
	})

	t.Run("not found", func(t *testing.T) {
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.OrderDetail{}, nil)

		_, err := f.svc.Get(context.Background(), 2)

		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestOrderService_GetAllDefaultsToNewestFirst(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().
		GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.OrderDetail, error) {
			assert.Equal(t, "orders.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.OrderDetail{{Order: model.Order{ID: 1}}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Orders, 1)
	assert.Equal(t, 1, res.TotalPage)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateOrderRequest
		setupMock func(f fixture, st *store)
		check     func(t *testing.T, fields map[string]any)
		wantErr   error
	}{
		{
			name: "status override skips the transition table",
			req:  dto.UpdateOrderRequest{Status: model.StatusCheckedOut},
			setupMock: func(f fixture, st *store) {
				f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)
			},
			check: func(t *testing.T, fields map[string]any) {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldTotalAmount)
			},
		},
		{
			name: "new dates reprice the stay",
			req:  dto.UpdateOrderRequest{CheckOutDate: "2024-03-05"},
			setupMock: func(f fixture, st *store) {
				f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)
				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(st.room, nil)
			},
			check: func(t *testing.T, fields map[string]any) {
				total, _ := fields[model.FieldTotalAmount].(decimal.Decimal)
				assert.True(t, decimal.RequireFromString("800.00").Equal(total), total.String())
				assert.Equal(t, gModel.MustParseDate("2024-03-05"), fields[model.FieldCheckOutDate])
			},
		},
		{
			name: "empty range is rejected",
			req:  dto.UpdateOrderRequest{CheckInDate: "2024-03-03"},
			setupMock: func(f fixture, st *store) {
				f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(st.order, nil)
			},
			wantErr: model.ErrInvalidOrderDates,
		},
		{
			name:      "unknown status",
			req:       dto.UpdateOrderRequest{Status: "archived"},
			setupMock: func(fixture, *store) {},
			wantErr:   model.ErrUnknownStatus,
		},
		{
			name: "unknown order",
			req:  dto.UpdateOrderRequest{Status: model.StatusCancelled},
			setupMock: func(f fixture, _ *store) {
				f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(passThroughTx)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Order{}, nil)
			},
			wantErr: model.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			st := pendingOrderOnRoom7()

			tt.setupMock(f, st)

			if tt.check != nil {
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						tt.check(t, fields)
						assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

						return nil
					})
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
			err := f.svc.UpdateOrder(ctx, tt.req, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
