// Package dismissal holds the decision rules behind the daily dismissal
// planner: how a student leaves school on a given date, and where their
// academic day ends. Everything here is a pure function over in-memory
// values; storage lives with the handlers.
package dismissal

import "strings"

// Type is how a student leaves school.
type Type string

const (
	Pickup   Type = "pickup"
	Bus      Type = "bus"
	Activity Type = "activity"
)

// ParseType normalizes a stored or submitted dismissal type. Empty and
// unrecognized values both come back false so loose free text in old rows
// never leaks into the planner as a real assignment.
func ParseType(raw string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case Pickup:
		return Pickup, true
	case Bus:
		return Bus, true
	case Activity:
		return Activity, true
	}
	return "", false
}

// Location is where a student's academic day concludes.
type Location string

const (
	Homeroom      Location = "homeroom"
	ElectiveBlock Location = "elective"
)

// EndsIn pairs the closing location with the block name when the day ends
// in an elective/advisory slot. Elective is empty for homeroom.
type EndsIn struct {
	Location Location
	Elective string
}
