package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	"hotel/infras/otel/mocks"
	notificationMocks "hotel/internal/domains/notification/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"
	orderMocks "hotel/internal/domains/order/mocks"
	orderModel "hotel/internal/domains/order/model"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

func eventMessage(t *testing.T, event model.OrderEvent) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(event.Key()), Value: value}
}

func orderDetail(email string) orderModel.OrderDetail {
	return orderModel.OrderDetail{
		Order: orderModel.Order{
			ID:           11,
			OrderNumber:  "ORD1700000000000ABCDEF",
			CheckInDate:  gModel.MustParseDate("2024-03-01"),
			CheckOutDate: gModel.MustParseDate("2024-03-03"),
			TotalAmount:  decimal.RequireFromString("400"),
			Status:       orderModel.StatusConfirmed,
		},
		CustomerName:  "Alice",
		CustomerEmail: email,
		RoomNumber:    "701",
		RoomType:      "deluxe",
		HotelName:     "Grand",
	}
}

func TestNotifier_Handle(t *testing.T) {
	confirmed := model.OrderEvent{Type: model.EventConfirmed, OrderID: 11}

	tests := []struct {
		name      string
		msg       func(t *testing.T) kafkaGo.Message
		setupMock func(orderRepo *orderMocks.MockOrder, mail *mailerMocks.MockMailer)
		wantErr   bool
	}{
		{
			name: "confirmed order is emailed",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, mail *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderDetail("alice@example.com"), nil)
				mail.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m mailer.Mail) error {
						assert.Equal(t, "alice@example.com", m.To)
						assert.Equal(t, "Booking confirmed #ORD1700000000000ABCDEF", m.Subject)
						assert.Contains(t, m.HTMLBody, "Dear Alice")
						assert.Contains(t, m.HTMLBody, "400.00")
						assert.Contains(t, m.HTMLBody, "2024-03-03")

						return nil
					})
			},
		},
		{
			name: "reminder uses its own template",
			msg: func(t *testing.T) kafkaGo.Message {
				return eventMessage(t, model.OrderEvent{Type: model.EventCheckInReminder, OrderID: 11})
			},
			setupMock: func(orderRepo *orderMocks.MockOrder, mail *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderDetail("alice@example.com"), nil)
				mail.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m mailer.Mail) error {
						assert.Equal(t, "Check-in reminder #ORD1700000000000ABCDEF", m.Subject)
						assert.Contains(t, m.HTMLBody, "starts on 2024-03-01")

						return nil
					})
			},
		},
		{
			name: "event without template is acknowledged",
			msg: func(t *testing.T) kafkaGo.Message {
				return eventMessage(t, model.OrderEvent{Type: model.EventBooked, OrderID: 11})
			},
			setupMock: func(*orderMocks.MockOrder, *mailerMocks.MockMailer) {},
		},
		{
			name:      "malformed payload is dropped",
			msg:       func(*testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{")} },
			setupMock: func(*orderMocks.MockOrder, *mailerMocks.MockMailer) {},
		},
		{
			name: "order not found",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, _ *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderModel.OrderDetail{}, nil)
			},
		},
		{
			name: "customer without email",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, _ *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderDetail(""), nil)
			},
		},
		{
			name: "mailer not configured",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, mail *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderDetail("alice@example.com"), nil)
				mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.ErrNotConfigured)
			},
		},
		{
			name: "mailer failure is redelivered",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, mail *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderDetail("alice@example.com"), nil)
				mail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: timeout"))
			},
			wantErr: true,
		},
		{
			name: "repository failure is redelivered",
			msg:  func(t *testing.T) kafkaGo.Message { return eventMessage(t, confirmed) },
			setupMock: func(orderRepo *orderMocks.MockOrder, _ *mailerMocks.MockMailer) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderModel.OrderDetail{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			orderRepo := orderMocks.NewMockOrder(ctrl)
			mail := mailerMocks.NewMockMailer(ctrl)
			tt.setupMock(orderRepo, mail)

			notifier := service.NewNotifier(orderRepo, mail, notificationMocks.NewMockPublisher(ctrl), mocks.NewOtel())

			err := notifier.Handle(context.Background(), tt.msg(t))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotifier_PublishCheckInReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	orderRepo := orderMocks.NewMockOrder(ctrl)
	publisher := notificationMocks.NewMockPublisher(ctrl)

	orderRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]orderModel.Order, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "orders.check_in_date = :check_in_date")
			assert.Equal(t, orderModel.StatusConfirmed, args["status"])

			return []orderModel.Order{{ID: 1, OrderNumber: "A"}, {ID: 2, OrderNumber: "B"}}, nil
		})
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, events ...model.OrderEvent) {
			require.Len(t, events, 2)
			assert.Equal(t, model.EventCheckInReminder, events[0].Type)
			assert.Equal(t, "B", events[1].OrderNumber)
		})

	notifier := service.NewNotifier(orderRepo, mailerMocks.NewMockMailer(ctrl), publisher, mocks.NewOtel())

	count, err := notifier.PublishCheckInReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotifier_PublishCheckInRemindersWithoutOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	orderRepo := orderMocks.NewMockOrder(ctrl)

	orderRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	notifier := service.NewNotifier(orderRepo, mailerMocks.NewMockMailer(ctrl), notificationMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	count, err := notifier.PublishCheckInReminders(context.Background())

	require.NoError(t, err)
	assert.Zero(t, count)
}
