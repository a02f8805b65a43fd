package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/review/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Review interface {
	InsertReturning(ctx context.Context, model model.Review) (int64, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReviewDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReviewDetail, error)
	CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	detail gRepo.Repository[model.ReviewDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ReviewDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReviewDetail, error) {
	return r.detail.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReviewDetail, error) {
	return r.detail.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}
