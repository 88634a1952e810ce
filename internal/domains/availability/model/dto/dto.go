package dto

import (
	"net/url"

	"tablebook/internal/domains/availability/model"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	"tablebook/shared/constant"
)

type CheckRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Date         string `json:"date"         validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"         validate:"required,datetime=15:04"`
}

func (c *CheckRequest) FromQuery(query url.Values) {
	c.RestaurantID = query.Get(constant.RequestParamRestaurantID)
	c.Date = query.Get(constant.RequestParamDate)
	c.Time = query.Get(constant.RequestParamTime)
}

type ScheduleRequest struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Date         string `json:"date"         validate:"required,datetime=2006-01-02"`
}

func (s *ScheduleRequest) FromQuery(query url.Values) {
	s.RestaurantID = query.Get(constant.RequestParamRestaurantID)
	s.Date = query.Get(constant.RequestParamDate)
}

type AvailabilityResponse struct {
	TwoSeater  int `json:"twoSeater"`
	FourSeater int `json:"fourSeater"`
}

func (a *AvailabilityResponse) FromModel(m model.Availability) {
	a.TwoSeater = m[restaurantModel.TableTypeTwoSeater]
	a.FourSeater = m[restaurantModel.TableTypeFourSeater]
}

type SlotResponse struct {
	Time string `json:"time"`
	AvailabilityResponse
}

func FromSchedule(schedule []model.SlotAvailability) []SlotResponse {
	res := make([]SlotResponse, len(schedule))

	for i, slot := range schedule {
		res[i].Time = slot.Time
		res[i].FromModel(slot.Availability)
	}

	return res
}
