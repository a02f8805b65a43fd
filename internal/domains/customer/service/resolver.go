package service

//go:generate go run go.uber.org/mock/mockgen -source=./resolver.go -destination=../mocks/resolver_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/repository"
	"hotel/shared"
	"hotel/shared/constant"

	"github.com/jmoiron/sqlx"
)

var errCustomerVanished = errors.New("customer conflicted on id card but could not be re-read")

// Resolver finds the customer behind a booking identity, creating it when needed.
type Resolver interface {
	ResolveOrCreate(ctx context.Context, tx *sqlx.Tx, identity model.Identity) (model.Customer, error)
}

type resolverImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func NewResolver(repo repository.Customer, otel otel.Otel) Resolver {
	return &resolverImpl{
		repo: repo,
		otel: otel,
	}
}

// ResolveOrCreate returns a known customer unchanged. A concurrent insert of
// the same id card is absorbed by the conflict clause and re-read.
func (r *resolverImpl) ResolveOrCreate(ctx context.Context, tx *sqlx.Tx, identity model.Identity) (customer model.Customer, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.ResolveOrCreate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if identity.IDCard != "" {
		customer, err = r.byIDCard(ctx, tx, identity.IDCard)
		if err != nil || customer.ID != 0 {
			return customer, err
		}
	}

	customer = identity.ToModel(shared.UserFromContext(ctx))

	id, inserted, err := r.repo.InsertUniqueTx(ctx, tx, customer)
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	if inserted {
		customer.ID = id

		return customer, nil
	}

	customer, err = r.byIDCard(ctx, tx, identity.IDCard)
	if err != nil {
		return model.Customer{}, err
	}

	if customer.ID == 0 {
		return model.Customer{}, errCustomerVanished
	}

	return customer, nil
}

func (r *resolverImpl) byIDCard(ctx context.Context, tx *sqlx.Tx, idCard string) (model.Customer, error) {
	customer, err := r.repo.GetTx(ctx, tx, shared.FilterByID(idCard, model.FieldIDCard, model.TableName))
	if err != nil {
		return model.Customer{}, fmt.Errorf("failed to get customer by id card: %w", err)
	}

	return customer, nil
}
