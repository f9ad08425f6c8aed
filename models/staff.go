package models

import "time"

type Staff struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	FirstName           string    `gorm:"size:50;not null" json:"first_name"`
	LastName            string    `gorm:"size:50;not null" json:"last_name"`
	Role                string    `gorm:"size:40" json:"role"`
	CanRecordAttendance bool      `gorm:"not null;default:false" json:"can_record_attendance"`
	Status              string    `gorm:"size:20;not null" json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staffs" }
