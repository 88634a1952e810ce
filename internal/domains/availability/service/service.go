package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"time"

	"tablebook/infras/otel"
	"tablebook/internal/domains/availability/model"
	"tablebook/internal/domains/availability/model/dto"
	reservationModel "tablebook/internal/domains/reservation/model"
	reservationRepository "tablebook/internal/domains/reservation/repository"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	restaurantRepository "tablebook/internal/domains/restaurant/repository"
	"tablebook/shared"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/validator"

	"github.com/rs/zerolog/log"
)

// Availability is read-through on every call; results are never cached since
// they change with each booking.
type Availability interface {
	Check(ctx context.Context, req dto.CheckRequest) (dto.AvailabilityResponse, error)
	DailySchedule(ctx context.Context, req dto.ScheduleRequest) ([]dto.SlotResponse, error)
}

type serviceImpl struct {
	reservationRepo reservationRepository.Reservation
	restaurantRepo  restaurantRepository.Restaurant
	otel            otel.Otel
}

func New(reservationRepo reservationRepository.Reservation, restaurantRepo restaurantRepository.Restaurant, otel otel.Otel) Availability {
	return &serviceImpl{
		reservationRepo: reservationRepo,
		restaurantRepo:  restaurantRepo,
		otel:            otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context, req dto.CheckRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.Check")
	defer scope.Finish(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return res, err
	}

	slot, err := reservationModel.ParseSlot(req.Time)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	restaurant, err := s.getRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return res, err
	}

	counts := model.Counts{}

	for _, tableType := range restaurantModel.TableTypes {
		count, err := s.reservationRepo.Count(ctx, reservationModel.FilterBySlot(restaurant.ID, day, slot, tableType))
		if err != nil {
			log.Error().Err(err).Str("tableType", tableType.String()).Msg("failed to count reservations")

			return res, fmt.Errorf("failed to count reservations: %w", err)
		}

		counts[tableType] = count
	}

	res.FromModel(model.Compute(restaurant.Tables, counts))

	return res, nil
}

func (s *serviceImpl) DailySchedule(ctx context.Context, req dto.ScheduleRequest) (res []dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.DailySchedule")
	defer scope.Finish(&err)

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.getRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	// A zero QueryParams disables pagination, the whole day is needed.
	reservations, err := s.reservationRepo.GetAll(ctx, gDto.QueryParams{}, reservationModel.FilterByDay(restaurant.ID, day),
		reservationModel.FieldTime, reservationModel.FieldTableType)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations of the day")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	return dto.FromSchedule(model.Schedule(restaurant.Tables, reservations)), nil
}

func (s *serviceImpl) getRestaurant(ctx context.Context, id string) (restaurantModel.Restaurant, error) {
	if !shared.IsValidID(id) {
		return restaurantModel.Restaurant{}, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(id, restaurantModel.FieldID, restaurantModel.TableName),
		restaurantModel.FieldID, restaurantModel.FieldTwoSeater, restaurantModel.FieldFourSeater)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return restaurant, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if !restaurant.Exists() {
		return restaurant, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	return restaurant, nil
}

func parseDate(value string) (time.Time, error) {
	day, err := reservationModel.ParseDate(value)
	if err != nil {
		return day, failure.BadRequest(err) //nolint:wrapcheck
	}

	return day, nil
}
