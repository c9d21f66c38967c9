package entity

import "time"

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Patient represents a patient administrative record
type Patient struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone          string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:char(1)" json:"gender,omitempty"`
	BloodGroup     string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address        string     `gorm:"type:text" json:"address,omitempty"`
	VitalSigns     JSON       `gorm:"type:jsonb" json:"vital_signs,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
