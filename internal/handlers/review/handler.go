package review

import (
	"hotel/infras/otel"
	customerModel "hotel/internal/domains/customer/model"
	hotelModel "hotel/internal/domains/hotel/model"
	"hotel/internal/domains/review/model"
	"hotel/internal/domains/review/model/dto"
	"hotel/internal/domains/review/service"
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
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Get("/order/{orderId}", handler.GetReviewByOrderID)
		routerGroup.Get("/{id}", handler.GetReviewByID)
		routerGroup.Patch("/{id}", handler.UpdateReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
		routerGroup.Put("/{id}/reply", handler.ReplyReview)
	})
}

// CreateReview records a guest review for a completed stay.
// @Summary Create a review
// @Description One review per checked-out order.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [post]
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReviews lists reviews.
// @Summary Get all reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param id query int false "Filter by ID"
// @Param order_id query int false "Filter by order"
// @Param customer_id query int false "Filter by customer"
// @Param customer_name query string false "Customer name contains"
// @Param hotel_id query int false "Filter by hotel"
// @Param hotel_name query string false "Hotel name contains"
// @Param min_rating query int false "Minimum rating"
// @Param max_rating query int false "Maximum rating"
// @Param has_reply query bool false "Replied or not"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := request.NewFilters(r).
		ID(model.FieldID, model.TableName, model.FieldID).
		ID(model.FieldOrderID, model.TableName, model.FieldOrderID).
		ID(model.FieldCustomerID, model.TableName, model.FieldCustomerID).
		Like("customer_name", customerModel.TableName, customerModel.FieldName).
		ID(model.FieldHotelID, model.TableName, model.FieldHotelID).
		Like("hotel_name", hotelModel.TableName, hotelModel.FieldName).
		Int64("min_rating", model.TableName, model.FieldRating, gDto.FilterOperatorGreaterEq).
		Int64("max_rating", model.TableName, model.FieldRating, gDto.FilterOperatorLessEq).
		Presence("has_reply", model.TableName, model.FieldReply).
		Build()
	if err != nil {
		response.WithError(w, err)

		return
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviewByID returns one review.
// @Summary Get a review by ID
// @Tags Review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [get]
func (handler *Handler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByID")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	review, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}

// GetReviewByOrderID returns the review left for an order.
// @Summary Get a review by order
// @Tags Review
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/order/{orderId} [get]
func (handler *Handler) GetReviewByOrderID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewByOrderID")
	defer scope.End()

	orderID, err := request.PathID(r, constant.RequestParamOrderID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	review, err := handler.service.GetByOrderID(ctx, orderID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review by order ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}

// UpdateReview edits rating or comment.
// @Summary Update a review by ID
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Update Review Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReview")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateReviewRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review updated successfully")

	response.WithMessage(w, http.StatusOK, "Review updated successfully")
}

// ReplyReview stores the hotel's answer to a review.
// @Summary Reply to a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body dto.ReplyReviewRequest true "Reply Review Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id}/reply [put]
// @Security BearerAuth
func (handler *Handler) ReplyReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplyReview")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.ReplyReviewRequest{}
	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Reply(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reply review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review replied successfully")

	response.WithMessage(w, http.StatusOK, "Review replied successfully")
}

// DeleteReview removes a review.
// @Summary Delete a review by ID
// @Tags Review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review deleted successfully")

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
