package model

import (
	"tablebook/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID         = "id"
	FieldName       = "name"
	FieldCreatedAt  = "created_at"
	FieldTwoSeater  = "two_seater"
	FieldFourSeater = "four_seater"
)

// Tables is the fixed inventory per table type. The reservation flow never
// writes it.
type Tables struct {
	TwoSeater  int `db:"two_seater"`
	FourSeater int `db:"four_seater"`
}

// Capacity returns the inventory for t, or 0 for an unknown type.
func (t Tables) Capacity(tableType TableType) int {
	switch tableType {
	case TableTypeTwoSeater:
		return t.TwoSeater
	case TableTypeFourSeater:
		return t.FourSeater
	default:
		return 0
	}
}

type Restaurant struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Tables
	model.Metadata
}

func (r Restaurant) Exists() bool {
	return r.ID != ""
}
