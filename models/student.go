package models

import (
	"time"

	"github.com/ccuneo-ui/school-attendance-system/dismissal"
)

type Student struct {
	ID        uint   `gorm:"primaryKey"       json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Grade     string `gorm:"size:10;not null" json:"grade"`  // JPK | SPK | K | 1..8
	Status    string `gorm:"size:20;not null" json:"status"` // active | inactive | guest

	// Standing weekday dismissal defaults. Empty = no default for that day.
	DismissalMon string `gorm:"size:20" json:"dismissal_mon"`
	DismissalTue string `gorm:"size:20" json:"dismissal_tue"`
	DismissalWed string `gorm:"size:20" json:"dismissal_wed"`
	DismissalThu string `gorm:"size:20" json:"dismissal_thu"`
	DismissalFri string `gorm:"size:20" json:"dismissal_fri"`
	BeforeCare   bool   `gorm:"not null;default:false" json:"before_care"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeeklyDefaults flattens the five weekday columns into the lookup the
// resolver works with.
func (s *Student) WeeklyDefaults() dismissal.WeeklyDefaults {
	w := dismissal.WeeklyDefaults{}
	set := func(day time.Weekday, raw string) {
		if t, ok := dismissal.ParseType(raw); ok {
			w[day] = t
		}
	}
	set(time.Monday, s.DismissalMon)
	set(time.Tuesday, s.DismissalTue)
	set(time.Wednesday, s.DismissalWed)
	set(time.Thursday, s.DismissalThu)
	set(time.Friday, s.DismissalFri)
	return w
}
