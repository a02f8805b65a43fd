package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	orderModel "hotel/internal/domains/order/model"
	orderRepo "hotel/internal/domains/order/repository"
	"hotel/internal/domains/review/model"
	"hotel/internal/domains/review/model/dto"
	"hotel/internal/domains/review/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Get(ctx context.Context, id int64) (dto.ReviewResponse, error)
	GetByOrderID(ctx context.Context, orderID int64) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id int64) error
	Reply(ctx context.Context, req dto.ReplyReviewRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Review
	orderRepo orderRepo.Order
	otel      otel.Otel
}

func New(repo repository.Review, orderRepo orderRepo.Order, otel otel.Otel) Review {
	return &serviceImpl{
		repo:      repo,
		orderRepo: orderRepo,
		otel:      otel,
	}
}

// Create accepts one review per checked-out order. Customer and hotel are
// copied from the order, never from the request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order, err := s.orderRepo.GetDetail(ctx, shared.FilterByID(req.OrderID, orderModel.FieldID, orderModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == 0 {
		return res, model.ErrOrderNotFound
	}

	if order.Status != orderModel.StatusCheckedOut {
		return res, fmt.Errorf("%w: order is %s", model.ErrOrderNotReviewable, order.Status)
	}

	reviewed, err := s.repo.Exist(ctx, shared.FilterByID(req.OrderID, model.FieldOrderID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if reviewed {
		return res, model.ErrOrderAlreadyReviewed
	}

	id, err := s.repo.InsertReturning(ctx, model.Review{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		HotelID:    order.HotelID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Metadata:   gModel.NewMetadata(shared.UserFromContext(ctx)),
	})
	if err != nil {
		// lost a race with a concurrent review of the same order
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrOrderAlreadyReviewed
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	req.Sortable(dto.SortableColumns, dto.DefaultSortColumn)

	models, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.getBy(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetByOrderID(ctx context.Context, orderID int64) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.GetByOrderID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.getBy(ctx, shared.FilterByID(orderID, model.FieldOrderID, model.TableName))
}

func (s *serviceImpl) getBy(ctx context.Context, filter gDto.FilterGroup) (res dto.ReviewResponse, err error) {
	review, err := s.repo.GetDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == 0 {
		return res, model.ErrReviewNotFound
	}

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.UserFromContext(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

// Reply overwrites any previous reply.
func (s *serviceImpl) Reply(ctx context.Context, req dto.ReplyReviewRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Reply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	user := shared.UserFromContext(ctx)
	now := timezone.Now().Unix()

	err = s.repo.Update(ctx, map[string]any{
		model.FieldReply:         req.Reply,
		model.FieldReplyAt:       now,
		model.FieldReplyBy:       user,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reply to review")

		return fmt.Errorf("failed to reply to review: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return fmt.Errorf("failed to check if review exists: %w", err)
	}

	if !exist {
		return model.ErrReviewNotFound
	}

	return nil
}
