package model

import (
	"time"

	"tablebook/shared/constant"
)

type EventType string

const (
	EventCreated   EventType = "reservation.created"
	EventCancelled EventType = "reservation.cancelled"
)

// Event is published to the reservation topic keyed by restaurant id, so
// events of one restaurant stay ordered within a partition.
type Event struct {
	Type           EventType `json:"type"`
	ReservationID  string    `json:"reservationId"`
	RestaurantID   string    `json:"restaurantId"`
	UserID         string    `json:"userId"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	TableType      string    `json:"tableType"`
	NumberOfGuests int       `json:"numberOfGuests"`
	ActorID        string    `json:"actorId"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewEvent(eventType EventType, r Reservation, actorID string, now time.Time) Event {
	return Event{
		Type:           eventType,
		ReservationID:  r.ID,
		RestaurantID:   r.RestaurantID,
		UserID:         r.UserID,
		Date:           r.Date.Format(constant.CalendarFormat),
		Time:           r.Time,
		TableType:      r.TableType.String(),
		NumberOfGuests: r.NumberOfGuests,
		ActorID:        actorID,
		OccurredAt:     now,
	}
}
