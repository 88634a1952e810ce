package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"time"

	"tablebook/config"
	"tablebook/infras/kafka"
	"tablebook/infras/metrics"
	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/model/dto"
	"tablebook/internal/domains/reservation/repository"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	restaurantRepository "tablebook/internal/domains/restaurant/repository"
	"tablebook/shared"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
	"tablebook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const listSortColumn = model.TableName + "." + model.FieldCreatedAt

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
	ListForUser(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ListAll(ctx context.Context, params gDto.QueryParams) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo           repository.Reservation
	restaurantRepo restaurantRepository.Restaurant
	cfg            *config.Config
	otel           otel.Otel
	kafka          kafka.Client
}

func New(repo repository.Reservation, restaurantRepo restaurantRepository.Restaurant, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		otel:           otel,
		kafka:          kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.Finish(&err)

	caller := gDto.CallerFromContext(ctx)
	if !caller.Authenticated() {
		return res, failure.Unauthorized("Authentication required") //nolint:wrapcheck
	}

	date, slot, err := validateBooking(req)
	if err != nil {
		return res, err
	}

	if !shared.IsValidID(req.RestaurantID) {
		return res, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(req.RestaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")
		metrics.ObserveReservation(metrics.OutcomeFailed)

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if !restaurant.Exists() {
		return res, failure.NotFound("Restaurant not found") //nolint:wrapcheck
	}

	reservation := req.ToModel(caller.UserID, date, slot)

	inserted, err := s.repo.InsertWithinCapacity(ctx, reservation, restaurant.Tables.Capacity(req.TableType))
	if err != nil {
		log.Error().Err(err).Str("slot", reservation.SlotKey()).Msg("failed to insert reservation")
		metrics.ObserveReservation(metrics.OutcomeFailed)

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	if !inserted {
		log.Info().Str("slot", reservation.SlotKey()).Msg("reservation rejected, slot is full")
		metrics.ObserveReservation(metrics.OutcomeRejected)

		return res, failure.CapacityExceededError
	}

	metrics.ObserveReservation(metrics.OutcomeBooked)
	s.publish(ctx, model.NewEvent(model.EventCreated, reservation, caller.UserID, timezone.Now()))

	res.FromModel(reservation)

	return res, nil
}

// validateBooking returns the parsed date and the normalised slot label.
func validateBooking(req dto.CreateReservationRequest) (date time.Time, slot string, err error) {
	if !req.TableType.Valid() {
		return date, slot, failure.BadRequestFromString("tableType has an unsupported value") //nolint:wrapcheck
	}

	date, err = model.ParseDate(req.Date)
	if err != nil {
		return date, slot, failure.BadRequest(err) //nolint:wrapcheck
	}

	slot, err = model.ParseSlot(req.Time)
	if err != nil {
		return date, slot, failure.BadRequest(err) //nolint:wrapcheck
	}

	if req.NumberOfGuests < 1 || req.NumberOfGuests > req.TableType.Seats() {
		return date, slot, failure.BadRequestFromString(fmt.Sprintf("numberOfGuests must be between 1 and %d for %s", req.TableType.Seats(), req.TableType)) //nolint:wrapcheck
	}

	return date, slot, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.Finish(&err)

	caller := gDto.CallerFromContext(ctx)
	if !caller.Authenticated() {
		return failure.Unauthorized("Authentication required") //nolint:wrapcheck
	}

	if !shared.IsValidID(id) {
		return failure.NotFound("Reservation not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if !reservation.Exists() {
		return failure.NotFound("Reservation not found") //nolint:wrapcheck
	}

	if reservation.UserID != caller.UserID && !caller.IsAdmin {
		return failure.Forbidden("You can only cancel your own reservations") //nolint:wrapcheck
	}

	deleted, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	// Lost a race with another cancellation of the same record.
	if deleted == 0 {
		return failure.NotFound("Reservation not found") //nolint:wrapcheck
	}

	metrics.ObserveReservation(metrics.OutcomeCanceled)
	s.publish(ctx, model.NewEvent(model.EventCancelled, reservation, caller.UserID, timezone.Now()))

	return nil
}

func (s *serviceImpl) ListForUser(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListForUser")
	defer scope.Finish(&err)

	caller := gDto.CallerFromContext(ctx)
	if !caller.Authenticated() {
		return res, failure.Unauthorized("Authentication required") //nolint:wrapcheck
	}

	return s.list(ctx, params, model.FilterByUser(caller.UserID), false)
}

func (s *serviceImpl) ListAll(ctx context.Context, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListAll")
	defer scope.Finish(&err)

	if !gDto.CallerFromContext(ctx).IsAdmin {
		return res, failure.ForbiddenError
	}

	return s.list(ctx, params, gDto.FilterGroup{}, true)
}

// list always orders newest first.
func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, withUser bool) (res dto.GetReservationsResponse, err error) {
	params.SortBy = listSortColumn
	params.SortDir = gDto.SortDirDesc

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	details, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(details, withUser, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, event model.Event) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Reservation, kafka.Message{
			Key:   event.RestaurantID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", string(event.Type)).Str("reservation", event.ReservationID).Msg("failed to publish reservation event")
		}
	}()
}
