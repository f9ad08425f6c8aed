package dismissal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEndsIn(t *testing.T) {
	tests := []struct {
		name     string
		grade    string
		day      time.Weekday
		location Location
		elective string
	}{
		{"lower school tuesday", "3", time.Tuesday, ElectiveBlock, "Elective"},
		{"middle school tuesday", "6", time.Tuesday, ElectiveBlock, "Advisory"},
		{"middle school thursday", "6", time.Thursday, ElectiveBlock, "Elective"},
		{"lower school thursday", "2", time.Thursday, Homeroom, ""},
		{"kindergarten tuesday", "K", time.Tuesday, Homeroom, ""},
		{"jpk tuesday", "JPK", time.Tuesday, Homeroom, ""},
		{"spk thursday", "SPK", time.Thursday, Homeroom, ""},
		{"middle school monday", "7", time.Monday, Homeroom, ""},
		{"lower school friday", "1", time.Friday, Homeroom, ""},
		{"blank grade", "", time.Tuesday, Homeroom, ""},
		{"unknown grade", "9", time.Tuesday, Homeroom, ""},
		{"untrimmed grade", " 4 ", time.Tuesday, ElectiveBlock, "Elective"},
		{"lowercase k", "k", time.Tuesday, Homeroom, ""},
		{"weekend", "6", time.Saturday, Homeroom, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateEndsIn(tc.grade, tc.day)
			assert.Equal(t, tc.location, got.Location)
			assert.Equal(t, tc.elective, got.Elective)
		})
	}
}

func TestEvaluateEndsInDeterministic(t *testing.T) {
	first := EvaluateEndsIn("5", time.Tuesday)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EvaluateEndsIn("5", time.Tuesday))
	}
}
