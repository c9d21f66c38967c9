package entity

import "time"

// Feedback status constants
const (
	FeedbackStatusNew      = "new"
	FeedbackStatusReviewed = "reviewed"
)

// Feedback represents patient feedback submitted about a visit
type Feedback struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID *int64    `gorm:"index" json:"patient_id,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
