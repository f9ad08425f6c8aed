package models

import "time"

// One row per (student, date). The unique index is what the planner's
// upserts key on; a second submit for the same pair overwrites, never
// duplicates.
type DailyDismissal struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	StudentID   uint   `gorm:"not null;uniqueIndex:uniq_student_date" json:"student_id"`
	Date        string `gorm:"column:dismissal_date;size:10;not null;uniqueIndex:uniq_student_date" json:"dismissal_date"` // YYYY-MM-DD
	Type        string `gorm:"column:dismissal_type;size:20;not null" json:"dismissal_type"`                               // pickup | bus | activity
	Destination string `gorm:"size:120" json:"destination"`                                                                // bus route or activity name
	Notes       string `gorm:"type:text" json:"notes"`
	IsOverride  bool   `gorm:"not null;default:false" json:"is_override"` // manual correction vs auto-populated default
	RecordedBy  string `gorm:"size:120" json:"recorded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
