package model

import (
	"strings"
	"time"

	restaurantModel "tablebook/internal/domains/restaurant/model"
	"tablebook/shared/constant"
	"tablebook/shared/dto"
	"tablebook/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRestaurantID = "restaurant_id"
	FieldDate         = "reservation_date"
	FieldTime         = "reservation_time"
	FieldTableType    = "table_type"
	FieldCreatedAt    = "created_at"
)

// Reservation is created by a successful booking and removed by
// cancellation. It is never updated.
type Reservation struct {
	ID             string                    `db:"id"`
	UserID         string                    `db:"user_id"`
	RestaurantID   string                    `db:"restaurant_id"`
	Date           time.Time                 `db:"reservation_date"`
	Time           string                    `db:"reservation_time"`
	TableType      restaurantModel.TableType `db:"table_type"`
	NumberOfGuests int                       `db:"number_of_guests"`
	model.Metadata
}

func (r Reservation) Exists() bool {
	return r.ID != ""
}

// SlotKey identifies the unit of contention: restaurant, date, time and
// table type.
func (r Reservation) SlotKey() string {
	return strings.Join([]string{
		r.RestaurantID,
		r.Date.Format(constant.CalendarFormat),
		r.Time,
		r.TableType.String(),
	}, "|")
}

// ReservationDetail joins the owner and restaurant for list views.
type ReservationDetail struct {
	Reservation
	RestaurantName string `column:"name"     db:"restaurant_name" table:"restaurants"`
	Username       string `column:"username" db:"username"        table:"users"`
	UserEmail      string `column:"email"    db:"user_email"      table:"users"`
}

func (ReservationDetail) GetJoinQuery() string {
	return "LEFT JOIN restaurants ON restaurants.id = reservations.restaurant_id " +
		"LEFT JOIN users ON users.id = reservations.user_id"
}

func FilterBySlot(restaurantID string, date time.Time, slot string, tableType restaurantModel.TableType) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: FieldRestaurantID, Value: restaurantID, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldDate, Value: date.Format(constant.CalendarFormat), Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldTime, Value: slot, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldTableType, Value: tableType.String(), Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}

func FilterByDay(restaurantID string, date time.Time) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: FieldRestaurantID, Value: restaurantID, Operator: dto.FilterOperatorEq, Table: TableName},
			dto.Filter{Field: FieldDate, Value: date.Format(constant.CalendarFormat), Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}

func FilterByUser(userID string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: FieldUserID, Value: userID, Operator: dto.FilterOperatorEq, Table: TableName},
		},
	}
}
