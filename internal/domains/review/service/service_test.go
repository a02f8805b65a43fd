package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	orderMocks "hotel/internal/domains/order/mocks"
	orderModel "hotel/internal/domains/order/model"
	reviewMocks "hotel/internal/domains/review/mocks"
	"hotel/internal/domains/review/model"
	"hotel/internal/domains/review/model/dto"
	"hotel/internal/domains/review/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
)

func checkedOutOrder() orderModel.OrderDetail {
	return orderModel.OrderDetail{
		Order:   orderModel.Order{ID: 11, CustomerID: 5, RoomID: 7, Status: orderModel.StatusCheckedOut},
		HotelID: 1,
	}
}

func TestReviewService_Create(t *testing.T) {
	req := dto.CreateReviewRequest{OrderID: 11, Rating: 5, Comment: "lovely"}

	tests := []struct {
		name      string
		setupMock func(repo *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder)
		wantID    int64
		wantErr   error
	}{
		{
			name: "customer and hotel come from the order",
			setupMock: func(repo *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(checkedOutOrder(), nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) (int64, error) {
						assert.Equal(t, int64(11), review.OrderID)
						assert.Equal(t, int64(5), review.CustomerID)
						assert.Equal(t, int64(1), review.HotelID)
						assert.Equal(t, 5, review.Rating)
						assert.Nil(t, review.ReplyAt)

						return 3, nil
					})
			},
			wantID: 3,
		},
		{
			name: "order not found",
			setupMock: func(_ *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(orderModel.OrderDetail{}, nil)
			},
			wantErr: model.ErrOrderNotFound,
		},
		{
			name: "order still checked in",
			setupMock: func(_ *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder) {
				order := checkedOutOrder()
				order.Status = orderModel.StatusCheckedIn
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(order, nil)
			},
			wantErr: model.ErrOrderNotReviewable,
		},
		{
			name: "order already reviewed",
			setupMock: func(repo *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(checkedOutOrder(), nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: model.ErrOrderAlreadyReviewed,
		},
		{
			name: "concurrent review wins the unique index",
			setupMock: func(repo *reviewMocks.MockReview, orderRepo *orderMocks.MockOrder) {
				orderRepo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(checkedOutOrder(), nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr: model.ErrOrderAlreadyReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := reviewMocks.NewMockReview(ctrl)
			orderRepo := orderMocks.NewMockOrder(ctrl)
			tt.setupMock(repo, orderRepo)

			svc := service.New(repo, orderRepo, mocks.NewOtel())

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestReviewService_Reply(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "thank you", fields[model.FieldReply])
			assert.Equal(t, "manager", fields[model.FieldReplyBy])
			assert.NotZero(t, fields[model.FieldReplyAt])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "manager")
	err := svc.Reply(ctx, dto.ReplyReviewRequest{Reply: "thank you"}, 3)

	assert.NoError(t, err)
}

func TestReviewService_MissingReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.ReviewDetail{}, nil).Times(2)

	assert.ErrorIs(t, svc.Update(context.Background(), dto.UpdateReviewRequest{Rating: 4}, 3), model.ErrReviewNotFound)
	assert.ErrorIs(t, svc.Reply(context.Background(), dto.ReplyReviewRequest{Reply: "hi"}, 3), model.ErrReviewNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), model.ErrReviewNotFound)

	_, err := svc.Get(context.Background(), 3)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)

	_, err = svc.GetByOrderID(context.Background(), 11)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestReviewService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, 4, fields[model.FieldRating])
			assert.NotContains(t, fields, model.FieldComment)

			return errors.New("db down")
		})

	err := svc.Update(context.Background(), dto.UpdateReviewRequest{Rating: 4}, 3)

	assert.ErrorContains(t, err, "failed to update review")
}

func TestReviewService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(repo, orderMocks.NewMockOrder(ctrl), mocks.NewOtel())

	repo.EXPECT().CountDetail(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().
		GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ReviewDetail, error) {
			assert.Equal(t, "reviews.rating", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.ReviewDetail{
				{Review: model.Review{ID: 1, Rating: 5}, HotelName: "Grand", CustomerName: "Alice"},
				{Review: model.Review{ID: 2, Rating: 4}, HotelName: "Grand", CustomerName: "Bob"},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "rating"}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, "Bob", res.Reviews[1].CustomerName)
}
