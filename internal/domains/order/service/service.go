package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	notificationModel "hotel/internal/domains/notification/model"
	notification "hotel/internal/domains/notification/service"
	"hotel/internal/domains/order/model"
	"hotel/internal/domains/order/model/dto"
	"hotel/internal/domains/order/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Order interface {
	Confirm(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	CheckIn(ctx context.Context, id int64) error
	CheckOut(ctx context.Context, id int64) error

	Get(ctx context.Context, id int64) (dto.OrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	UpdateOrder(ctx context.Context, req dto.UpdateOrderRequest, id int64) error
}

type serviceImpl struct {
	repo       repository.Order
	roomRepo   roomRepo.Room
	transactor gRepo.Transactor
	publisher  notification.Publisher
	otel       otel.Otel
}

func New(repo repository.Order, roomRepo roomRepo.Room, transactor gRepo.Transactor, publisher notification.Publisher, otel otel.Otel) Order {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		transactor: transactor,
		publisher:  publisher,
		otel:       otel,
	}
}

func (s *serviceImpl) Confirm(ctx context.Context, id int64) error {
	return s.apply(ctx, id, model.OperationConfirm)
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) error {
	return s.apply(ctx, id, model.OperationCancel)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id int64) error {
	return s.apply(ctx, id, model.OperationCheckIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id int64) error {
	return s.apply(ctx, id, model.OperationCheckOut)
}

// apply locks the order row, checks op against the transition table and
// writes the order and room status in the same transaction.
func (s *serviceImpl) apply(ctx context.Context, id int64, op model.Operation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order."+string(op))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)

	var order model.Order

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		locked, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}

		if locked.ID == 0 {
			return model.ErrOrderNotFound
		}

		next, err := model.NextStatus(locked.Status, op)
		if err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldStatus:        next.To,
			constant.FieldModifiedAt: timezone.Now().Unix(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if next.RoomStatus != "" {
			roomFields := map[string]any{
				roomModel.FieldStatus:    next.RoomStatus,
				constant.FieldModifiedAt: fields[constant.FieldModifiedAt],
				constant.FieldModifiedBy: user,
			}

			if err = s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(locked.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
				return fmt.Errorf("failed to update room status: %w", err)
			}
		}

		locked.Status = next.To
		order = locked

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("orderId", id).Str("operation", string(op)).Msg("failed to apply order operation")

		return err
	}

	if eventType, ok := notificationModel.EventForStatus(order.Status); ok {
		s.publisher.Publish(ctx, notificationModel.NewOrderEvent(eventType, order))
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == 0 {
		return res, model.ErrOrderNotFound
	}

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	req.Sortable(dto.SortableColumns, dto.DefaultSortColumn)

	models, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// UpdateOrder is the administrative override. It skips the transition table
// and leaves the room status alone, but keeps the date range and total valid.
func (s *serviceImpl) UpdateOrder(ctx context.Context, req dto.UpdateOrderRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".order.UpdateOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status != "" && !model.IsKnownStatus(req.Status) {
		return fmt.Errorf("%w: %s", model.ErrUnknownStatus, req.Status)
	}

	user := shared.UserFromContext(ctx)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		order, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}

		if order.ID == 0 {
			return model.ErrOrderNotFound
		}

		fields, err := s.overrideFields(ctx, order, req)
		if err != nil {
			return err
		}

		fields[constant.FieldModifiedAt] = timezone.Now().Unix()
		fields[constant.FieldModifiedBy] = user

		if err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("orderId", id).Msg("failed to update order")

		return err
	}

	return nil
}

func (s *serviceImpl) overrideFields(ctx context.Context, order model.Order, req dto.UpdateOrderRequest) (map[string]any, error) {
	fields := map[string]any{}

	if req.Status != "" {
		fields[model.FieldStatus] = req.Status
	}

	if req.CheckInDate == "" && req.CheckOutDate == "" {
		return fields, nil
	}

	checkIn, checkOut := order.CheckInDate, order.CheckOutDate

	if req.CheckInDate != "" {
		parsed, err := gModel.ParseDate(req.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidOrderDates, err)
		}

		checkIn = parsed
	}

	if req.CheckOutDate != "" {
		parsed, err := gModel.ParseDate(req.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidOrderDates, err)
		}

		checkOut = parsed
	}

	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return nil, model.ErrInvalidOrderDates
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(order.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	fields[model.FieldCheckInDate] = checkIn
	fields[model.FieldCheckOutDate] = checkOut
	fields[model.FieldTotalAmount] = room.Price.Mul(decimal.NewFromInt(int64(nights)))

	return fields, nil
}
