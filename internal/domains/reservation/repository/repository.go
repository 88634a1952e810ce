package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"tablebook/infras/otel"
	"tablebook/infras/postgres"
	"tablebook/internal/domains/reservation/model"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	gRepo "tablebook/shared/repository"

	"github.com/jmoiron/sqlx"
)

// slotLockQuery serialises writers of one slot key until the surrounding
// transaction ends.
const slotLockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

var errSlotFull = errors.New("slot is full")

type Reservation interface {
	// InsertWithinCapacity inserts reservation only if fewer than capacity
	// live reservations share its slot key. It returns false when the slot
	// is full.
	InsertWithinCapacity(ctx context.Context, reservation model.Reservation, capacity int) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	details gRepo.Repository[model.ReservationDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.ReservationDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertWithinCapacity(ctx context.Context, reservation model.Reservation, capacity int) (inserted bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertWithinCapacity")
	defer scope.Finish(&err)

	slotKey := reservation.SlotKey()
	scope.SetAttribute("slot_key", slotKey)

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, slotLockQuery, slotKey); err != nil {
			return fmt.Errorf("failed to lock slot %s: %w", slotKey, err)
		}

		count, err := r.CountTx(ctx, tx, model.FilterBySlot(reservation.RestaurantID, reservation.Date, reservation.Time, reservation.TableType))
		if err != nil {
			return err
		}

		if count >= capacity {
			return errSlotFull
		}

		return r.InsertTx(ctx, tx, reservation)
	})

	if errors.Is(err, errSlotFull) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error) {
	return r.details.GetAll(ctx, params, filter)
}
