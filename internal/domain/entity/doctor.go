package entity

import "time"

// Staff/patient record status values. A freshly created record is active.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

// Doctor represents a doctor administrative record. It is a registry entry
// managed from the console, not a login account.
type Doctor struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Specialization  string    `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	Department      string    `gorm:"type:varchar(100);index" json:"department,omitempty"`
	ExperienceYears int       `gorm:"default:0" json:"experience_years"`
	Status          string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsActive checks if the doctor record is active
func (d *Doctor) IsActive() bool {
	return d.Status == StatusActive
}
