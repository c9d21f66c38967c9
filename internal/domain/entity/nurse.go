package entity

import "time"

// Nurse shift constants
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

// Nurse represents a nurse administrative record
type Nurse struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Department string    `gorm:"type:varchar(100);index" json:"department,omitempty"`
	Shift      string    `gorm:"type:varchar(20)" json:"shift,omitempty"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Nurse) TableName() string {
	return "nurses"
}
