package models

import "time"

// MCardCharge is one ledger entry on a student's M Card.
type MCardCharge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"index;not null" json:"student_id"`
	ChargeDate string    `gorm:"size:10;not null" json:"charge_date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"recorded_at"`
}

func (MCardCharge) TableName() string { return "mcard_charges" }
