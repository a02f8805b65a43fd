package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/service"
	gDto "hotel/shared/dto"
)

func TestResolver_ResolveOrCreate(t *testing.T) {
	existing := model.Customer{ID: 5, Name: "Alice", IDCard: "ID-1", Phone: "111"}

	tests := []struct {
		name      string
		identity  model.Identity
		setupMock func(repo *customerMocks.MockCustomer)
		want      model.Customer
		wantErr   bool
	}{
		{
			name:     "known id card returns the stored customer unchanged",
			identity: model.Identity{IDCard: "ID-1", Name: "Alice Renamed", Phone: "999"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			want: existing,
		},
		{
			name:     "unknown id card is inserted",
			identity: model.Identity{IDCard: "ID-2", Name: "Bob"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)
				repo.EXPECT().InsertUniqueTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(6), true, nil)
			},
			want: model.Customer{ID: 6, Name: "Bob", IDCard: "ID-2"},
		},
		{
			name:     "empty id card always creates",
			identity: model.Identity{Name: "Walk-in"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().InsertUniqueTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), true, nil)
			},
			want: model.Customer{ID: 7, Name: "Walk-in"},
		},
		{
			name:     "concurrent insert of the same id card is re-read",
			identity: model.Identity{IDCard: "ID-1", Name: "Alice"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				gomock.InOrder(
					repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Customer{}, nil),
					repo.EXPECT().InsertUniqueTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), false, nil),
					repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(existing, nil),
				)
			},
			want: existing,
		},
		{
			name:     "insert failure",
			identity: model.Identity{Name: "Walk-in"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().InsertUniqueTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := customerMocks.NewMockCustomer(ctrl)
			tt.setupMock(repo)

			resolver := service.NewResolver(repo, mocks.NewOtel())

			got, err := resolver.ResolveOrCreate(context.Background(), nil, tt.identity)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.IDCard, got.IDCard)
			assert.Equal(t, tt.want.Phone, got.Phone)
		})
	}
}

// Resolving the same identity twice yields the same customer and inserts once.
func TestResolver_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customerMocks.NewMockCustomer(ctrl)

	var stored []model.Customer

	repo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, _ ...string) (model.Customer, error) {
			_, args := filter.GetWhereClause()
			for _, customer := range stored {
				if customer.IDCard == args[model.FieldIDCard] {
					return customer, nil
				}
			}

			return model.Customer{}, nil
		}).
		Times(2)
	repo.EXPECT().
		InsertUniqueTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer model.Customer) (int64, bool, error) {
			customer.ID = int64(len(stored) + 1)
			stored = append(stored, customer)

			return customer.ID, true, nil
		}).
		Times(1)

	resolver := service.NewResolver(repo, mocks.NewOtel())
	identity := model.Identity{IDCard: "ID-9", Name: "Carol", Email: "carol@example.com"}

	first, err := resolver.ResolveOrCreate(context.Background(), nil, identity)
	assert.NoError(t, err)

	second, err := resolver.ResolveOrCreate(context.Background(), nil, identity)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, stored, 1)
}
