// Package model contains domain models passed between layers.
package model

import "time"

// DateLayout is the textual date format used by the results table, e.g. "13 May 1950".
const DateLayout = "02 Jan 2006"

// RaceRecord is one historical Grand Prix result.
type RaceRecord struct {
	Year      int       // season year as written in the source table
	GrandPrix string    // event name, key into the reference tables
	Date      time.Time // parsed race date
	RawDate   string    // date text as read from the source
	Winner    string    // winning driver
	Team      string    // winning constructor
}

// Day returns the day of month of the race.
func (r RaceRecord) Day() int { return r.Date.Day() }

// Month returns the month of the race.
func (r RaceRecord) Month() time.Month { return r.Date.Month() }

// Field names a column the engine can group or filter by.
type Field string

// Known fields.
const (
	FieldWinner  Field = "winner"
	FieldTeam    Field = "team"
	FieldCountry Field = "country"
)

// ParseField maps a request value to a Field.
func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldWinner, FieldTeam, FieldCountry:
		return Field(s), true
	}
	return "", false
}

// Value returns the raw column value for winner and team. Country is derived
// through the reference tables and is not stored on the record.
func (r RaceRecord) Value(f Field) string {
	switch f {
	case FieldWinner:
		return r.Winner
	case FieldTeam:
		return r.Team
	default:
		return ""
	}
}

// KeyFunc extracts the grouping or filtering key of a record.
type KeyFunc func(RaceRecord) string
