package models

// Elective is a catalog entry used to populate selection choices in the
// planner UI. It plays no part in dismissal resolution.
type Elective struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:60;uniqueIndex;not null" json:"name"`
}
