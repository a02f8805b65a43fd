package order

import (
	"context"
	"hotel/infras/otel"
	customerModel "hotel/internal/domains/customer/model"
	hotelModel "hotel/internal/domains/hotel/model"
	"hotel/internal/domains/order/model"
	"hotel/internal/domains/order/model/dto"
	"hotel/internal/domains/order/service"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/request"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Order
	otel    otel.Otel
}

func New(service service.Order, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrderByID)
		routerGroup.Put("/{id}/confirm", handler.ConfirmOrder)
		routerGroup.Put("/{id}/cancel", handler.CancelOrder)
		routerGroup.Put("/{id}/check-in", handler.CheckIn)
		routerGroup.Put("/{id}/check-out", handler.CheckOut)
	})

	router.Patch("/admin/orders/{id}", handler.UpdateOrder)
}

// GetOrders lists orders newest first.
// @Summary Get all orders
// @Tags Order
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param id query int false "Filter by ID"
// @Param order_number query string false "Filter by order number"
// @Param customer_id query int false "Filter by customer"
// @Param customer_name query string false "Customer name contains"
// @Param room_id query int false "Filter by room"
// @Param hotel_id query int false "Filter by hotel"
// @Param hotel_name query string false "Hotel name contains"
// @Param check_in_from query string false "Check-in on or after (yyyy-MM-dd)"
// @Param check_in_to query string false "Check-in on or before (yyyy-MM-dd)"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := request.NewFilters(r).
		ID(model.FieldID, model.TableName, model.FieldID).
		Eq(model.FieldOrderNumber, model.TableName, model.FieldOrderNumber).
		ID(model.FieldCustomerID, model.TableName, model.FieldCustomerID).
		Like("customer_name", customerModel.TableName, customerModel.FieldName).
		ID(model.FieldRoomID, model.TableName, model.FieldRoomID).
		ID("hotel_id", roomModel.TableName, roomModel.FieldHotelID).
		Like("hotel_name", hotelModel.TableName, hotelModel.FieldName).
		Date("check_in_from", model.TableName, model.FieldCheckInDate, gDto.FilterOperatorGreaterEq).
		Date("check_in_to", model.TableName, model.FieldCheckInDate, gDto.FilterOperatorLessEq).
		Eq(model.FieldStatus, model.TableName, model.FieldStatus).
		Build()
	if err != nil {
		response.WithError(w, err)

		return
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrderByID returns an order with its customer, room and hotel.
// @Summary Get an order by ID
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	order, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// ConfirmOrder moves a pending order to confirmed.
// @Summary Confirm an order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/confirm [put]
// @Security BearerAuth
func (handler *Handler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ConfirmOrder", handler.service.Confirm, "Order confirmed successfully")
}

// CancelOrder cancels a pending or confirmed order.
// @Summary Cancel an order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CancelOrder", handler.service.Cancel, "Order cancelled successfully")
}

// CheckIn marks the guest as arrived and the room as occupied.
// @Summary Check in an order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/check-in [put]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckIn", handler.service.CheckIn, "Order checked in successfully")
}

// CheckOut closes the stay and frees the room.
// @Summary Check out an order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/orders/{id}/check-out [put]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CheckOut", handler.service.CheckOut, "Order checked out successfully")
}

func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, apply func(context.Context, int64) error, message string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = apply(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("orderId", id).Str("action", name).Msg("failed to change order status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(message)

	response.WithMessage(w, http.StatusOK, message)
}

// UpdateOrder lets an admin correct dates or force a status.
// @Summary Override an order
// @Description Change stay dates (total is recomputed) or set any status. Admin only.
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body dto.UpdateOrderRequest true "Update Order Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/orders/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrder")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateOrderRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.UpdateOrder(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order updated successfully")

	response.WithMessage(w, http.StatusOK, "Order updated successfully")
}
