package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/order/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Order interface {
	// InsertUniqueTx reports false without error when the order number is taken.
	InsertUniqueTx(ctx context.Context, sqltx *sqlx.Tx, model model.Order) (int64, bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error

	GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OrderDetail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderDetail, error)
	CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	detail gRepo.Repository[model.OrderDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.OrderDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) InsertUniqueTx(ctx context.Context, sqltx *sqlx.Tx, order model.Order) (int64, bool, error) {
	return r.InsertOnConflictTx(ctx, sqltx, order, model.ConflictOrderNumber) //nolint:wrapcheck
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OrderDetail, error) {
	return r.detail.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderDetail, error) {
	return r.detail.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetail(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}
