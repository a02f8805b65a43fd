package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	orderMocks "hotel/internal/domains/order/mocks"
	orderModel "hotel/internal/domains/order/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
)

func TestCustomerService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func(repo *customerMocks.MockCustomer)
		wantID    int64
		wantErr   error
	}{
		{
			name: "successful creation",
			req:  dto.CreateCustomerRequest{Name: "Alice", IDCard: "ID-1"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(int64(5), nil)
			},
			wantID: 5,
		},
		{
			name: "without id card skips the duplicate check",
			req:  dto.CreateCustomerRequest{Name: "Walk-in"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(int64(6), nil)
			},
			wantID: 6,
		},
		{
			name: "id card already registered",
			req:  dto.CreateCustomerRequest{Name: "Alice", IDCard: "ID-1"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: model.ErrDuplicateIdentity,
		},
		{
			name: "id card registered concurrently",
			req:  dto.CreateCustomerRequest{Name: "Alice", IDCard: "ID-1"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr: model.ErrDuplicateIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := customerMocks.NewMockCustomer(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestCustomerService_GetWithOrderHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customerMocks.NewMockCustomer(ctrl)
	orders := orderMocks.NewMockOrder(ctrl)

	svc := service.New(repo, orders, mocks.NewOtel())

	t.Run("by id", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: 5, Name: "Alice"}, nil)
		orders.EXPECT().
			GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]orderModel.OrderDetail, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "orders.customer_id")
				assert.Equal(t, int64(5), args[orderModel.FieldCustomerID])
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []orderModel.OrderDetail{{Order: orderModel.Order{ID: 1, CustomerID: 5}}}, nil
			})

		res, err := svc.Get(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, "Alice", res.Name)
		assert.Len(t, res.Orders, 1)
	})

	t.Run("by id card", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: 5, IDCard: "ID-1"}, nil)
		orders.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return([]orderModel.OrderDetail{}, nil)

		res, err := svc.GetByIDCard(context.Background(), "ID-1")

		assert.NoError(t, err)
		assert.Equal(t, "ID-1", res.IDCard)
		assert.Empty(t, res.Orders)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

		_, err := svc.GetByIDCard(context.Background(), "nope")

		assert.ErrorIs(t, err, model.ErrCustomerNotFound)
	})
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := customerMocks.NewMockCustomer(ctrl)

	svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.ErrorContains(t, err, "failed to count customers")
}

func TestCustomerService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func(repo *customerMocks.MockCustomer)
		wantErr   error
	}{
		{
			name: "id card change is re-checked against other customers",
			req:  dto.UpdateCustomerRequest{IDCard: "ID-2"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, "customers.id != :id")

						return true, nil
					})
			},
			wantErr: model.ErrDuplicateIdentity,
		},
		{
			name: "successful update",
			req:  dto.UpdateCustomerRequest{Phone: "222"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			req:  dto.UpdateCustomerRequest{Phone: "222"},
			setupMock: func(repo *customerMocks.MockCustomer) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: model.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := customerMocks.NewMockCustomer(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

			err := svc.Update(context.Background(), tt.req, 5)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
