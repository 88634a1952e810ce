package model

import (
	"fmt"
	"time"

	"tablebook/shared/constant"
)

const (
	FirstSlotHour = 11
	LastSlotHour  = 22
)

// DailySlots returns the bookable slot labels of a day, ascending.
func DailySlots() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)

	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return slots
}

// ParseDate parses a calendar date. The result is midnight UTC so that its
// calendar fields never shift with the application timezone.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.CalendarFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must match format %s", constant.CalendarFormat)
	}

	return date, nil
}

// ParseSlot normalises "9:00" or "19:00" into a slot label of the daily grid.
func ParseSlot(value string) (string, error) {
	parsed, err := time.Parse(constant.SlotFormat, value)
	if err != nil {
		return "", fmt.Errorf("time must match format %s", constant.SlotFormat)
	}

	if parsed.Minute() != 0 || parsed.Hour() < FirstSlotHour || parsed.Hour() > LastSlotHour {
		return "", fmt.Errorf("time must be on the hour between %02d:00 and %02d:00", FirstSlotHour, LastSlotHour)
	}

	return parsed.Format(constant.SlotFormat), nil
}
