package models

import "time"

type Program struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:80;not null" json:"name"`
	BillingRate float64   `gorm:"not null;default:0" json:"billing_rate"`
	BillingType string    `gorm:"size:20" json:"billing_type"` // hourly | flat
	Status      string    `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
