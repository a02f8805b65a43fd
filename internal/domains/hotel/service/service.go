package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.CreatedResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id int64) (dto.HotelDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id int64) error
}

type serviceImpl struct {
	repo       repository.Hotel
	roomRepo   roomRepo.Room
	transactor gRepo.Transactor
	otel       otel.Otel
}

func New(repo repository.Hotel, roomRepo roomRepo.Room, transactor gRepo.Transactor, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		transactor: transactor,
		otel:       otel,
	}
}

// Create stores the hotel and its initial rooms atomically.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.CreatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		id, err := s.repo.InsertReturningTx(ctx, tx, req.ToModel(user))
		if err != nil {
			return fmt.Errorf("failed to insert hotel: %w", err)
		}

		for _, room := range req.ToRoomModels(id, user) {
			if err = s.roomRepo.InsertTx(ctx, tx, room); err != nil {
				if gRepo.IsUniqueViolation(err) {
					return fmt.Errorf("%w: %s", model.ErrDuplicateRoomNumber, room.RoomNumber)
				}

				return fmt.Errorf("failed to insert room %s: %w", room.RoomNumber, err)
			}
		}

		res.ID = id

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		return dto.CreatedResponse{}, err
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == 0 {
		return res, model.ErrHotelNotFound
	}

	rooms, err := s.roomRepo.GetAllDetail(ctx, gDto.QueryParams{
		SortBy:  roomModel.TableName + "." + roomModel.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(id, roomModel.FieldHotelID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel rooms")

		return res, fmt.Errorf("failed to get hotel rooms: %w", err)
	}

	res.FromModel(hotel, rooms)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !exist {
		return model.ErrHotelNotFound
	}

	fields := shared.TransformFields(req, shared.UserFromContext(ctx))
	if req.StarLevel != nil {
		fields[model.FieldStarLevel] = *req.StarLevel
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	return nil
}
