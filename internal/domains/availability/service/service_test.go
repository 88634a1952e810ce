package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tablebook/infras/otel/mocks"
	"tablebook/internal/domains/availability/model/dto"
	"tablebook/internal/domains/availability/service"
	reservationMocks "tablebook/internal/domains/reservation/mocks"
	reservationModel "tablebook/internal/domains/reservation/model"
	restaurantMocks "tablebook/internal/domains/restaurant/mocks"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
)

const (
	restaurantID = "6f1c2a44-1d1e-4c1f-9a51-0f8e2b7d3c11"
	unknownID    = "6f1c2a44-1d1e-4c1f-9a51-0f8e2b7d3cff"
)

var day = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) (service.Availability, *reservationMocks.MockReservation, *restaurantMocks.MockRestaurant) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reservationRepo := reservationMocks.NewMockReservation(ctrl)
	restaurantRepo := restaurantMocks.NewMockRestaurant(ctrl)

	return service.New(reservationRepo, restaurantRepo, mocks.NewOtel()), reservationRepo, restaurantRepo
}

func restaurant() restaurantModel.Restaurant {
	return restaurantModel.Restaurant{
		ID:     restaurantID,
		Tables: restaurantModel.Tables{TwoSeater: 1, FourSeater: 3},
	}
}

func checkRequest() dto.CheckRequest {
	return dto.CheckRequest{RestaurantID: restaurantID, Date: "2025-06-30", Time: "19:00"}
}

func TestAvailabilityService_Check(t *testing.T) {
	t.Run("no reservations returns inventory", func(t *testing.T) {
		svc, reservationRepo, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurant(), nil)
		reservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil).Times(2)

		res, err := svc.Check(context.Background(), checkRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, res.TwoSeater)
		assert.Equal(t, 3, res.FourSeater)
	})

	t.Run("subtracts counts per table type", func(t *testing.T) {
		svc, reservationRepo, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurant(), nil)
		reservationRepo.EXPECT().
			Count(gomock.Any(), reservationModel.FilterBySlot(restaurantID, day, "19:00", restaurantModel.TableTypeTwoSeater)).
			Return(1, nil)
		reservationRepo.EXPECT().
			Count(gomock.Any(), reservationModel.FilterBySlot(restaurantID, day, "19:00", restaurantModel.TableTypeFourSeater)).
			Return(5, nil)

		res, err := svc.Check(context.Background(), checkRequest())
		require.NoError(t, err)
		assert.Equal(t, 0, res.TwoSeater)
		assert.Equal(t, 0, res.FourSeater)
	})

	t.Run("invalid query", func(t *testing.T) {
		tests := []struct {
			name    string
			modify  func(*dto.CheckRequest)
			message string
		}{
			{name: "missing date", modify: func(r *dto.CheckRequest) { r.Date = "" }, message: "date is required"},
			{name: "missing time", modify: func(r *dto.CheckRequest) { r.Time = "" }, message: "time is required"},
			{name: "missing restaurant", modify: func(r *dto.CheckRequest) { r.RestaurantID = "" }, message: "restaurantId is required"},
			{name: "malformed date", modify: func(r *dto.CheckRequest) { r.Date = "30/06/2025" }, message: "date must match format 2006-01-02"},
			{name: "malformed time", modify: func(r *dto.CheckRequest) { r.Time = "7pm" }, message: "time must match format 15:04"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _, _ := newService(t)

				req := checkRequest()
				tt.modify(&req)

				_, err := svc.Check(context.Background(), req)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.EqualError(t, err, tt.message)
			})
		}
	})

	t.Run("time off the slot grid", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := checkRequest()
		req.Time = "09:00"

		_, err := svc.Check(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("restaurant not found", func(t *testing.T) {
		svc, _, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurantModel.Restaurant{}, nil)

		req := checkRequest()
		req.RestaurantID = unknownID

		_, err := svc.Check(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("malformed restaurant id never reaches the store", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := checkRequest()
		req.RestaurantID = "abc"

		_, err := svc.Check(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("count failure", func(t *testing.T) {
		svc, reservationRepo, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurant(), nil)
		reservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.Check(context.Background(), checkRequest())
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAvailabilityService_DailySchedule(t *testing.T) {
	t.Run("fetches the day once and fills the grid", func(t *testing.T) {
		svc, reservationRepo, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurant(), nil)
		reservationRepo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{}, reservationModel.FilterByDay(restaurantID, day), gomock.Any(), gomock.Any()).
			Return([]reservationModel.Reservation{
				{Time: "11:00", TableType: restaurantModel.TableTypeTwoSeater},
				{Time: "11:00", TableType: restaurantModel.TableTypeFourSeater},
			}, nil).
			Times(1)

		slots, err := svc.DailySchedule(context.Background(), dto.ScheduleRequest{RestaurantID: restaurantID, Date: "2025-06-30"})
		require.NoError(t, err)
		require.Len(t, slots, 12)

		assert.Equal(t, "11:00", slots[0].Time)
		assert.Equal(t, 0, slots[0].TwoSeater)
		assert.Equal(t, 2, slots[0].FourSeater)

		assert.Equal(t, "22:00", slots[11].Time)
		assert.Equal(t, 1, slots[11].TwoSeater)
		assert.Equal(t, 3, slots[11].FourSeater)
	})

	t.Run("missing date", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.DailySchedule(context.Background(), dto.ScheduleRequest{RestaurantID: restaurantID})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "date is required")
	})

	t.Run("missing restaurant id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.DailySchedule(context.Background(), dto.ScheduleRequest{Date: "2025-06-30"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed restaurant id", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.DailySchedule(context.Background(), dto.ScheduleRequest{RestaurantID: "abc", Date: "2025-06-30"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("restaurant not found", func(t *testing.T) {
		svc, _, restaurantRepo := newService(t)

		restaurantRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(restaurantModel.Restaurant{}, nil)

		_, err := svc.DailySchedule(context.Background(), dto.ScheduleRequest{RestaurantID: unknownID, Date: "2025-06-30"})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
