package dismissal

import (
	"strings"
	"time"
)

// endsInRule sends a grade/weekday combination into a named elective or
// advisory block. Rules are checked in order, first match wins; anything
// unmatched ends the day in homeroom.
type endsInRule struct {
	grades   []string
	weekday  time.Weekday
	elective string
}

var (
	lowerSchool  = []string{"1", "2", "3", "4"}
	middleSchool = []string{"5", "6", "7", "8"}

	// The school's fixed elective schedule. Order matters.
	endsInRules = []endsInRule{
		{grades: lowerSchool, weekday: time.Tuesday, elective: "Elective"},
		{grades: middleSchool, weekday: time.Tuesday, elective: "Advisory"},
		{grades: middleSchool, weekday: time.Thursday, elective: "Elective"},
	}
)

// NormalizeGrade trims and upper-cases a stored grade so "k" and " K "
// compare equal. Numeric grades stay as-is.
func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// EvaluateEndsIn decides where a student's day concludes. Total for every
// (grade, weekday) input: JPK/SPK/K, blank grades, and weekends all fall
// through to homeroom.
func EvaluateEndsIn(grade string, day time.Weekday) EndsIn {
	g := NormalizeGrade(grade)
	for _, r := range endsInRules {
		if r.weekday != day {
			continue
		}
		for _, rg := range r.grades {
			if g == rg {
				return EndsIn{Location: ElectiveBlock, Elective: r.elective}
			}
		}
	}
	return EndsIn{Location: Homeroom}
}
