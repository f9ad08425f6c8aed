package models

import "time"

// One attendance row per (enrollment, date); re-marking the same day
// overwrites status/notes and refreshes recorded_by.
type AttendanceRecord struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	EnrollmentID uint   `gorm:"not null;uniqueIndex:uniq_enrollment_date" json:"enrollment_id"`
	Date         string `gorm:"column:attendance_date;size:10;not null;uniqueIndex:uniq_enrollment_date" json:"attendance_date"` // YYYY-MM-DD
	Status       string `gorm:"size:20;not null" json:"status"`                                                                  // present | absent | excused
	Notes        string `gorm:"type:text" json:"notes"`
	RecordedBy   uint   `gorm:"not null" json:"recorded_by"` // staff id

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
