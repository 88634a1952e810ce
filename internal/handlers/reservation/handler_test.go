package reservation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tablebook/infras/otel/mocks"
	availabilityMocks "tablebook/internal/domains/availability/mocks"
	availabilityDto "tablebook/internal/domains/availability/model/dto"
	reservationMocks "tablebook/internal/domains/reservation/mocks"
	"tablebook/internal/domains/reservation/model/dto"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	"tablebook/internal/handlers/reservation"
	gDto "tablebook/shared/dto"
	"tablebook/shared/failure"
)

type fixture struct {
	service      *reservationMocks.MockReservationService
	availability *availabilityMocks.MockAvailabilityService
	router       chi.Router
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		service:      reservationMocks.NewMockReservationService(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
		router:       chi.NewRouter(),
	}

	handler := reservation.New(f.service, f.availability, mocks.NewOtel())
	handler.Router(f.router)

	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return decoded
}

const validBooking = `{"restaurantId":"r-1","date":"2025-06-30","time":"19:00","tableType":"twoSeater","numberOfGuests":2}`

func TestCreateReservation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Create(gomock.Any(), dto.CreateReservationRequest{
			RestaurantID:   "r-1",
			Date:           "2025-06-30",
			Time:           "19:00",
			TableType:      restaurantModel.TableTypeTwoSeater,
			NumberOfGuests: 2,
		}).Return(dto.ReservationResponse{ID: "res-1", TableType: "twoSeater"}, nil)

		rec := f.do(http.MethodPost, "/reservations", validBooking)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data, _ := body(t, rec)["data"].(map[string]any)
		assert.Equal(t, "res-1", data["id"])
	})

	t.Run("slot full", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ReservationResponse{}, failure.CapacityExceededError)

		rec := f.do(http.MethodPost, "/reservations", validBooking)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No tables available for selected type", body(t, rec)["error"])
	})

	t.Run("malformed restaurant id", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ReservationResponse{}, failure.NotFound("Restaurant not found"))

		rec := f.do(http.MethodPost, "/reservations",
			`{"restaurantId":"abc","date":"2025-06-30","time":"19:00","tableType":"twoSeater","numberOfGuests":2}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Restaurant not found", body(t, rec)["error"])
	})

	t.Run("unknown table type never reaches the service", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations",
			`{"restaurantId":"r-1","date":"2025-06-30","time":"19:00","tableType":"booth","numberOfGuests":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing date", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations",
			`{"restaurantId":"r-1","time":"19:00","tableType":"twoSeater","numberOfGuests":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelReservation(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		code int
	}{
		{name: "cancelled", err: nil, code: http.StatusOK},
		{name: "not owner", err: failure.Forbidden("You can only cancel your own reservations"), code: http.StatusForbidden},
		{name: "absent", err: failure.NotFound("Reservation not found"), code: http.StatusNotFound},
		{name: "malformed id", id: "not-a-uuid", err: failure.NotFound("Reservation not found"), code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			id := tt.id
			if id == "" {
				id = "res-1"
			}

			f.service.EXPECT().Cancel(gomock.Any(), id).Return(tt.err)

			rec := f.do(http.MethodDelete, "/reservations/"+id, "")

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestListReservations(t *testing.T) {
	t.Run("own reservations with default paging", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().ListForUser(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).
			Return(dto.GetReservationsResponse{TotalData: 0, TotalPage: 1, Reservations: []dto.ReservationDetailResponse{}}, nil)

		rec := f.do(http.MethodGet, "/reservations", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("own reservations cap the page size at 100", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().ListForUser(gomock.Any(), gDto.QueryParams{Page: 3, Limit: 100}).
			Return(dto.GetReservationsResponse{Reservations: []dto.ReservationDetailResponse{}}, nil)

		rec := f.do(http.MethodGet, "/reservations?page=3&limit=500", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("all reservations with default paging", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().ListAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).
			Return(dto.GetReservationsResponse{Reservations: []dto.ReservationDetailResponse{}}, nil)

		rec := f.do(http.MethodGet, "/reservations/all", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("all reservations forbidden for non admin", func(t *testing.T) {
		f := newFixture(t)

		f.service.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(dto.GetReservationsResponse{}, failure.ForbiddenError)

		rec := f.do(http.MethodGet, "/reservations/all", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAvailabilityRoutes(t *testing.T) {
	t.Run("check", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().Check(gomock.Any(), availabilityDto.CheckRequest{RestaurantID: "r-1", Date: "2025-06-30", Time: "19:00"}).
			Return(availabilityDto.AvailabilityResponse{TwoSeater: 1, FourSeater: 0}, nil)

		rec := f.do(http.MethodGet, "/reservations/check?restaurantId=r-1&date=2025-06-30&time=19:00", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data, _ := body(t, rec)["data"].(map[string]any)
		assert.InDelta(t, 1, data["twoSeater"], 0)
		assert.InDelta(t, 0, data["fourSeater"], 0)
	})

	t.Run("slots", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().DailySchedule(gomock.Any(), availabilityDto.ScheduleRequest{RestaurantID: "r-1", Date: "2025-06-30"}).
			Return([]availabilityDto.SlotResponse{{Time: "11:00"}}, nil)

		rec := f.do(http.MethodGet, "/reservations/slots?restaurantId=r-1&date=2025-06-30", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data, _ := body(t, rec)["data"].([]any)
		require.Len(t, data, 1)
	})

	t.Run("missing time", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().Check(gomock.Any(), availabilityDto.CheckRequest{RestaurantID: "r-1", Date: "2025-06-30"}).
			Return(availabilityDto.AvailabilityResponse{}, failure.BadRequestFromString("time is required"))

		rec := f.do(http.MethodGet, "/reservations/check?restaurantId=r-1&date=2025-06-30", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
