package service

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	customer "hotel/internal/domains/customer/service"
	hotelModel "hotel/internal/domains/hotel/model"
	notificationModel "hotel/internal/domains/notification/model"
	notification "hotel/internal/domains/notification/service"
	orderModel "hotel/internal/domains/order/model"
	orderRepo "hotel/internal/domains/order/repository"
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
)

const defaultOrderNumberAttempts = 3

var errOrderNumberExhausted = errors.New("could not allocate a unique order number")

// availabilityOrder lists candidates by hotel name, room type, room number.
const availabilityOrder = "hotels.name ASC, rooms.room_type ASC, rooms.room_number"

type Booking interface {
	FindAvailableRooms(ctx context.Context, req dto.SearchAvailableRoomsRequest) ([]dto.AvailableRoomResponse, error)
	BookRoom(ctx context.Context, req dto.BookRoomRequest) (dto.BookingResultResponse, error)
}

type serviceImpl struct {
	roomRepo   roomRepo.Room
	orderRepo  orderRepo.Order
	resolver   customer.Resolver
	transactor gRepo.Transactor
	publisher  notification.Publisher
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	orderRepo orderRepo.Order,
	resolver customer.Resolver,
	transactor gRepo.Transactor,
	publisher notification.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		roomRepo:   roomRepo,
		orderRepo:  orderRepo,
		resolver:   resolver,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		otel:       otel,
	}
}

// FindAvailableRooms is read-only. Rooms flagged occupied or in maintenance
// are never candidates; the rest are dropped when an active order overlaps.
func (s *serviceImpl) FindAvailableRooms(ctx context.Context, req dto.SearchAvailableRoomsRequest) (res []dto.AvailableRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FindAvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, err := searchStay(req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.roomRepo.GetAllDetail(ctx, gDto.QueryParams{
		SortBy:  availabilityOrder,
		SortDir: gDto.SortDirAsc,
	}, candidateFilter(req))
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate rooms")

		return nil, fmt.Errorf("failed to get candidate rooms: %w", err)
	}

	res = []dto.AvailableRoomResponse{}
	if len(candidates) == 0 {
		return res, nil
	}

	roomIDs := make([]int64, len(candidates))
	for i, room := range candidates {
		roomIDs[i] = room.ID
	}

	orders, err := s.orderRepo.GetAll(ctx, gDto.QueryParams{}, activeOrdersFilter(roomIDs...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active orders")

		return nil, fmt.Errorf("failed to get active orders: %w", err)
	}

	booked := map[int64]bool{}

	for _, order := range orders {
		if stay.Overlaps(model.Stay{CheckIn: order.CheckInDate, CheckOut: order.CheckOutDate}) {
			booked[order.RoomID] = true
		}
	}

	for _, room := range candidates {
		if booked[room.ID] {
			continue
		}

		available := dto.AvailableRoomResponse{}
		available.FromModel(room, req)
		res = append(res, available)
	}

	return res, nil
}

// BookRoom runs the whole booking in one transaction. The room row lock
// serialises concurrent bookings of the same room, so the overlap re-check
// below cannot race. Room status is left alone until the order is confirmed.
func (s *serviceImpl) BookRoom(ctx context.Context, req dto.BookRoomRequest) (res dto.BookingResultResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BookRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)

	var order orderModel.Order

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == 0 || room.Status != roomModel.StatusAvailable {
			return model.ErrRoomUnavailable
		}

		guest, err := s.resolver.ResolveOrCreate(ctx, tx, req.Identity())
		if err != nil {
			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		quote, err := model.ComputeTotal(room.Price, req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return err
		}

		if err = s.ensureNoOverlap(ctx, tx, room.ID, quote.Stay); err != nil {
			return err
		}

		order = orderModel.Order{
			CustomerID:   guest.ID,
			RoomID:       room.ID,
			CheckInDate:  quote.Stay.CheckIn,
			CheckOutDate: quote.Stay.CheckOut,
			TotalAmount:  quote.Total,
			Status:       orderModel.StatusPending,
			Metadata:     gModel.NewMetadata(user),
		}

		order.ID, order.OrderNumber, err = s.insertOrder(ctx, tx, order)

		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("roomId", req.RoomID).Msg("failed to book room")

		return res, err
	}

	s.publisher.Publish(ctx, notificationModel.NewOrderEvent(notificationModel.EventBooked, order))

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) ensureNoOverlap(ctx context.Context, tx *sqlx.Tx, roomID int64, stay model.Stay) error {
	orders, err := s.orderRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, activeOrdersFilter(roomID))
	if err != nil {
		return fmt.Errorf("failed to get active orders: %w", err)
	}

	for _, existing := range orders {
		if stay.Overlaps(model.Stay{CheckIn: existing.CheckInDate, CheckOut: existing.CheckOutDate}) {
			return fmt.Errorf("%w: overlaps order %s", model.ErrRoomUnavailable, existing.OrderNumber)
		}
	}

	return nil
}

// insertOrder draws a fresh order number until the unique index accepts it.
func (s *serviceImpl) insertOrder(ctx context.Context, tx *sqlx.Tx, order orderModel.Order) (int64, string, error) {
	attempts := s.cfg.Booking.OrderNumberAttempts
	if attempts <= 0 {
		attempts = defaultOrderNumberAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		order.OrderNumber = model.NewOrderNumber(timezone.Now())

		id, inserted, err := s.orderRepo.InsertUniqueTx(ctx, tx, order)
		if err != nil {
			return 0, "", fmt.Errorf("failed to insert order: %w", err)
		}

		if inserted {
			return id, order.OrderNumber, nil
		}

		log.Warn().Str("orderNumber", order.OrderNumber).Int("attempt", attempt).Msg("order number collision, regenerating")
	}

	return 0, "", errOrderNumberExhausted
}

func searchStay(req dto.SearchAvailableRoomsRequest) (model.Stay, error) {
	in, err := gModel.ParseDate(req.CheckInDate)
	if err != nil {
		return model.Stay{}, fmt.Errorf("%w: %w", model.ErrInvalidDateRange, err)
	}

	out, err := gModel.ParseDate(req.CheckOutDate)
	if err != nil {
		return model.Stay{}, fmt.Errorf("%w: %w", model.ErrInvalidDateRange, err)
	}

	return model.Stay{CheckIn: in, CheckOut: out}, nil
}

func candidateFilter(req dto.SearchAvailableRoomsRequest) gDto.FilterGroup {
	filter := gDto.And(gDto.Filter{
		Field:    roomModel.FieldStatus,
		Value:    roomModel.StatusAvailable,
		Operator: gDto.FilterOperatorEq,
		Table:    roomModel.TableName,
	})

	if req.Location != "" {
		filter.Add(gDto.Filter{
			ArgName:  "location",
			Field:    hotelModel.FieldAddress,
			Value:    req.Location,
			Operator: gDto.FilterOperatorLike,
			Table:    hotelModel.TableName,
		})
	}

	if req.RoomType != "" {
		filter.Add(gDto.Filter{
			Field:    roomModel.FieldRoomType,
			Value:    req.RoomType,
			Operator: gDto.FilterOperatorEq,
			Table:    roomModel.TableName,
		})
	}

	if req.HotelName != "" {
		filter.Add(gDto.Filter{
			ArgName:  "hotel_name",
			Field:    hotelModel.FieldName,
			Value:    req.HotelName,
			Operator: gDto.FilterOperatorLike,
			Table:    hotelModel.TableName,
		})
	}

	return filter
}

func activeOrdersFilter(roomIDs ...int64) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{
			Field:    orderModel.FieldRoomID,
			Value:    roomIDs,
			Operator: gDto.FilterOperatorIn,
			Table:    orderModel.TableName,
		},
		gDto.Filter{
			Field:    orderModel.FieldStatus,
			Value:    orderModel.ActiveStatuses,
			Operator: gDto.FilterOperatorIn,
			Table:    orderModel.TableName,
		},
	)
}
