package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:60;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	Name      string    `json:"name" gorm:"size:120"`
	CanManage bool      `json:"can_manage" gorm:"not null;default:false"` // planner writes, exports
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
