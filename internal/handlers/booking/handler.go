package booking

import (
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/available-rooms", handler.FindAvailableRooms)
		routerGroup.Post("/", handler.BookRoom)
	})
}

// FindAvailableRooms lists rooms free for the whole stay.
// @Summary Search available rooms
// @Description List rooms with no active order overlapping [check_in_date, check_out_date).
// @Tags Booking
// @Produce json
// @Param check_in_date query string true "Check-in date (yyyy-MM-dd)"
// @Param check_out_date query string true "Check-out date (yyyy-MM-dd)"
// @Param location query string false "Hotel address contains"
// @Param room_type query string false "Room type"
// @Param hotel_name query string false "Hotel name contains"
// @Success 200 {object} response.Data[[]dto.AvailableRoomResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/available-rooms [get]
func (handler *Handler) FindAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindAvailableRooms")
	defer scope.End()

	query := r.URL.Query()

	req := dto.SearchAvailableRoomsRequest{
		CheckInDate:  query.Get("check_in_date"),
		CheckOutDate: query.Get("check_out_date"),
		Location:     query.Get("location"),
		RoomType:     query.Get("room_type"),
		HotelName:    query.Get("hotel_name"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid availability query")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.FindAvailableRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// BookRoom places a pending order for a room.
// @Summary Book a room
// @Description Resolve or create the guest and place a pending order with a computed total.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookRoomRequest true "Book Room Request"
// @Success 201 {object} response.Data[dto.BookingResultResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.BookRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.BookRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
