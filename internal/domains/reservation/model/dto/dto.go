package dto

import (
	"time"

	"tablebook/internal/domains/reservation/model"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	"tablebook/shared"
	"tablebook/shared/constant"
	gDto "tablebook/shared/dto"
	gModel "tablebook/shared/model"
	"tablebook/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID   string                    `json:"restaurantId"   validate:"required"`
	Date           string                    `json:"date"           validate:"required,datetime=2006-01-02"`
	Time           string                    `json:"time"           validate:"required,datetime=15:04"`
	TableType      restaurantModel.TableType `json:"tableType"      validate:"required,enum"`
	NumberOfGuests int                       `json:"numberOfGuests" validate:"gte=1"`
}

// ToModel expects date and slot to be already parsed and normalised.
func (c *CreateReservationRequest) ToModel(userID string, date time.Time, slot string) model.Reservation {
	return model.Reservation{
		ID:             uuid.NewString(),
		UserID:         userID,
		RestaurantID:   c.RestaurantID,
		Date:           date,
		Time:           slot,
		TableType:      c.TableType,
		NumberOfGuests: c.NumberOfGuests,
		Metadata:       gModel.NewMetadata(timezone.Now(), userID),
	}
}

type ReservationResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	RestaurantID   string `json:"restaurantId"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	TableType      string `json:"tableType"`
	NumberOfGuests int    `json:"numberOfGuests"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.RestaurantID = m.RestaurantID
	r.Date = m.Date.Format(constant.CalendarFormat)
	r.Time = m.Time
	r.TableType = m.TableType.String()
	r.NumberOfGuests = m.NumberOfGuests
	r.Metadata.FromModel(m.Metadata)
}

type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	RestaurantName string        `json:"restaurantName"`
	User           *UserResponse `json:"user,omitempty"`
}

// FromModel fills the user block only when withUser is set; a caller listing
// their own reservations already knows who they are.
func (r *ReservationDetailResponse) FromModel(m model.ReservationDetail, withUser bool) {
	r.ReservationResponse.FromModel(m.Reservation)
	r.RestaurantName = m.RestaurantName

	if withUser {
		r.User = &UserResponse{
			Username: m.Username,
			Email:    m.UserEmail,
		}
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationDetailResponse `json:"reservations"`
	TotalPage    int                         `json:"totalPage"`
	TotalData    int                         `json:"totalData"`
}

func (r *GetReservationsResponse) FromModels(models []model.ReservationDetail, withUser bool, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationDetailResponse, len(models))
	for i, m := range models {
		r.Reservations[i].FromModel(m, withUser)
	}
}
