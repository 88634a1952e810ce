// Package model holds the pure availability arithmetic: remaining capacity is
// inventory minus live reservations, never below zero.
package model

import (
	reservationModel "tablebook/internal/domains/reservation/model"
	restaurantModel "tablebook/internal/domains/restaurant/model"
)

// Availability is the remaining table count per type for one slot.
type Availability map[restaurantModel.TableType]int

// SlotAvailability is one row of a daily schedule.
type SlotAvailability struct {
	Time         string
	Availability Availability
}

// Counts holds live reservation counts per table type.
type Counts map[restaurantModel.TableType]int

// Remaining clamps at zero; counts above capacity mean rows were committed
// against an older inventory.
func Remaining(capacity, count int) int {
	return max(0, capacity-count)
}

func Compute(tables restaurantModel.Tables, counts Counts) Availability {
	availability := make(Availability, len(restaurantModel.TableTypes))

	for _, tableType := range restaurantModel.TableTypes {
		availability[tableType] = Remaining(tables.Capacity(tableType), counts[tableType])
	}

	return availability
}

// Tally partitions the reservations of one day by slot and table type.
func Tally(reservations []reservationModel.Reservation) map[string]Counts {
	tally := map[string]Counts{}

	for _, r := range reservations {
		counts, ok := tally[r.Time]
		if !ok {
			counts = Counts{}
			tally[r.Time] = counts
		}

		counts[r.TableType]++
	}

	return tally
}

// Schedule covers every slot of the daily grid in ascending order, booked or
// not.
func Schedule(tables restaurantModel.Tables, reservations []reservationModel.Reservation) []SlotAvailability {
	tally := Tally(reservations)
	slots := reservationModel.DailySlots()

	schedule := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		schedule[i] = SlotAvailability{
			Time:         slot,
			Availability: Compute(tables, tally[slot]),
		}
	}

	return schedule
}
