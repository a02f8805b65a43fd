package service

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	orderModel "hotel/internal/domains/order/model"
	orderRepo "hotel/internal/domains/order/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"html/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type mailTemplate struct {
	file    string
	subject string
}

var mailTemplates = map[model.EventType]mailTemplate{
	model.EventConfirmed:       {file: "confirmed.html", subject: "Booking confirmed #%s"},
	model.EventCheckInReminder: {file: "check_in_reminder.html", subject: "Check-in reminder #%s"},
}

type mailData struct {
	OrderNumber  string
	CustomerName string
	HotelName    string
	HotelAddress string
	RoomNumber   string
	RoomType     string
	CheckInDate  string
	CheckOutDate string
	Nights       int
	TotalAmount  string
}

// Notifier turns order events into guest emails.
type Notifier interface {
	Handle(ctx context.Context, msg kafkaGo.Message) error
	PublishCheckInReminders(ctx context.Context) (int, error)
}

type notifierImpl struct {
	orderRepo orderRepo.Order
	mailer    mailer.Mailer
	publisher Publisher
	otel      otel.Otel
}

func NewNotifier(orderRepo orderRepo.Order, mailer mailer.Mailer, publisher Publisher, otel otel.Otel) Notifier {
	return &notifierImpl{
		orderRepo: orderRepo,
		mailer:    mailer,
		publisher: publisher,
		otel:      otel,
	}
}

// Handle returns an error only when the message should be redelivered. Events
// without a template, orders that vanished and guests without an email address
// are acknowledged and skipped.
func (n *notifierImpl) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[model.OrderEvent](msg)
	if err != nil {
		// a malformed payload will never decode, drop it
		return nil
	}

	tmpl, ok := mailTemplates[event.Type]
	if !ok {
		return nil
	}

	order, err := n.orderRepo.GetDetail(ctx, shared.FilterByID(event.OrderID, orderModel.FieldID, orderModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("orderId", event.OrderID).Msg("failed to get order for notification")

		return fmt.Errorf("failed to get order for notification: %w", err)
	}

	if order.ID == 0 {
		log.Warn().Int64("orderId", event.OrderID).Msg("order for notification not found")

		return nil
	}

	if order.CustomerEmail == "" {
		log.Debug().Str("orderNumber", order.OrderNumber).Msg("customer has no email, skipping notification")

		return nil
	}

	body, err := render(tmpl.file, order)
	if err != nil {
		return err
	}

	err = n.mailer.Send(ctx, mailer.Mail{
		To:       order.CustomerEmail,
		Subject:  fmt.Sprintf(tmpl.subject, order.OrderNumber),
		HTMLBody: body,
	})
	if errors.Is(err, mailer.ErrNotConfigured) {
		log.Warn().Str("orderNumber", order.OrderNumber).Str("type", string(event.Type)).Msg("mailer not configured, notification dropped")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// PublishCheckInReminders emits a reminder for every confirmed order whose
// guest arrives tomorrow in the application timezone.
func (n *notifierImpl) PublishCheckInReminders(ctx context.Context) (count int, err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.PublishCheckInReminders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tomorrow := gModel.DateOf(timezone.Now()).AddDays(1)

	orders, err := n.orderRepo.GetAll(ctx, gDto.QueryParams{}, gDto.And(
		gDto.Filter{
			Field:    orderModel.FieldStatus,
			Value:    orderModel.StatusConfirmed,
			Operator: gDto.FilterOperatorEq,
			Table:    orderModel.TableName,
		},
		gDto.Filter{
			Field:    orderModel.FieldCheckInDate,
			Value:    tomorrow,
			Operator: gDto.FilterOperatorEq,
			Table:    orderModel.TableName,
		},
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders due for check-in")

		return 0, fmt.Errorf("failed to get orders due for check-in: %w", err)
	}

	if len(orders) == 0 {
		return 0, nil
	}

	events := make([]model.OrderEvent, len(orders))
	for i, order := range orders {
		events[i] = model.NewOrderEvent(model.EventCheckInReminder, order)
	}

	n.publisher.Publish(ctx, events...)

	log.Info().Int("count", len(events)).Str("checkInDate", tomorrow.String()).Msg("check-in reminders published")

	return len(events), nil
}

func render(file string, order orderModel.OrderDetail) (string, error) {
	var body bytes.Buffer

	err := templates.ExecuteTemplate(&body, file, mailData{
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		HotelName:    order.HotelName,
		HotelAddress: order.HotelAddress,
		RoomNumber:   order.RoomNumber,
		RoomType:     order.RoomType,
		CheckInDate:  order.CheckInDate.String(),
		CheckOutDate: order.CheckOutDate.String(),
		Nights:       order.CheckInDate.DaysUntil(order.CheckOutDate),
		TotalAmount:  order.TotalAmount.StringFixed(2),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s", file)
	}

	return body.String(), nil
}
