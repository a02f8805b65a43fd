package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	orderModel "hotel/internal/domains/order/model"
	orderRepo "hotel/internal/domains/order/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
	Get(ctx context.Context, id int64) (dto.CustomerDetailResponse, error)
	GetByIDCard(ctx context.Context, idCard string) (dto.CustomerDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) error
}

type serviceImpl struct {
	repo      repository.Customer
	orderRepo orderRepo.Order
	otel      otel.Otel
}

func New(repo repository.Customer, orderRepo orderRepo.Order, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:      repo,
		orderRepo: orderRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureIDCardFree(ctx, req.IDCard, 0); err != nil {
		return res, err
	}

	id, err := s.repo.InsertReturning(ctx, req.ToModel(shared.UserFromContext(ctx)))
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, model.ErrDuplicateIdentity
		}

		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count customers")

		return res, fmt.Errorf("failed to count customers: %w", err)
	}

	req.Sortable(dto.SortableColumns, dto.DefaultSortColumn)

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (dto.CustomerDetailResponse, error) {
	return s.detail(ctx, "Get", shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetByIDCard(ctx context.Context, idCard string) (dto.CustomerDetailResponse, error) {
	return s.detail(ctx, "GetByIDCard", shared.FilterByID(idCard, model.FieldIDCard, model.TableName))
}

func (s *serviceImpl) detail(ctx context.Context, op string, filter gDto.FilterGroup) (res dto.CustomerDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer."+op)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return res, model.ErrCustomerNotFound
	}

	orders, err := s.orderRepo.GetAllDetail(ctx, gDto.QueryParams{
		SortBy:  orderModel.TableName + "." + orderModel.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, shared.FilterByID(customer.ID, orderModel.FieldCustomerID, orderModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer orders")

		return res, fmt.Errorf("failed to get customer orders: %w", err)
	}

	res.FromModel(customer, orders)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return model.ErrCustomerNotFound
	}

	if err = s.ensureIDCardFree(ctx, req.IDCard, id); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.UserFromContext(ctx)), filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return model.ErrDuplicateIdentity
		}

		log.Error().Err(err).Msg("failed to update customer")

		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// ensureIDCardFree rejects an id card held by a customer other than selfID.
// The unique index still has the last word under concurrency.
func (s *serviceImpl) ensureIDCardFree(ctx context.Context, idCard string, selfID int64) error {
	if idCard == "" {
		return nil
	}

	filter := shared.FilterByID(idCard, model.FieldIDCard, model.TableName)
	if selfID != 0 {
		filter.Add(gDto.Filter{Field: model.FieldID, Value: selfID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	taken, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check id card")

		return fmt.Errorf("failed to check id card: %w", err)
	}

	if taken {
		return model.ErrDuplicateIdentity
	}

	return nil
}
