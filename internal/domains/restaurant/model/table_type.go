package model

// TableType is a closed set. Adding a member means adding a capacity column
// to Tables and a case to Tables.Capacity and Seats.
type TableType string

const (
	TableTypeTwoSeater  TableType = "twoSeater"
	TableTypeFourSeater TableType = "fourSeater"
)

// TableTypes lists every member in display order.
var TableTypes = []TableType{TableTypeTwoSeater, TableTypeFourSeater}

func (t TableType) Valid() bool {
	switch t {
	case TableTypeTwoSeater, TableTypeFourSeater:
		return true
	default:
		return false
	}
}

// Seats is the largest party the table type seats.
func (t TableType) Seats() int {
	switch t {
	case TableTypeTwoSeater:
		return 2
	case TableTypeFourSeater:
		return 4
	default:
		return 0
	}
}

func (t TableType) String() string {
	return string(t)
}
