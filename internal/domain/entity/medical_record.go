package entity

import "time"

// MedicalRecord represents a clinical note recorded for a patient visit.
// PatientID, DoctorID and AppointmentID are weak references.
type MedicalRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int64     `gorm:"not null;index" json:"patient_id"`
	DoctorID      int64     `gorm:"not null;index" json:"doctor_id"`
	AppointmentID *int64    `gorm:"index" json:"appointment_id,omitempty"`
	Diagnosis     string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment     string    `gorm:"type:text" json:"treatment,omitempty"`
	BloodPressure string    `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	Weight        float64   `gorm:"default:0" json:"weight,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	RecordedAt    time.Time `gorm:"not null;index" json:"recorded_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
