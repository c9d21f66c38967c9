package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Prescription status constants
const (
	PrescriptionStatusActive    = "active"
	PrescriptionStatusCompleted = "completed"
	PrescriptionStatusCancelled = "cancelled"
)

// PrescriptionItem is one prescribed medicine line
type PrescriptionItem struct {
	MedicineID int64  `json:"medicine_id"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency,omitempty"`
	Duration   string `json:"duration,omitempty"`
}

// PrescriptionItems is a JSONB-backed list of prescription lines
type PrescriptionItems []PrescriptionItem

// Value implements driver.Valuer
func (p PrescriptionItems) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *PrescriptionItems) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []PrescriptionItem
	err := json.Unmarshal(bytes, &result)
	*p = PrescriptionItems(result)
	return err
}

// Prescription represents a set of medicines prescribed to a patient.
// PatientID, DoctorID and AppointmentID are weak references.
type Prescription struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID      int64             `gorm:"not null;index" json:"doctor_id"`
	AppointmentID *int64            `gorm:"index" json:"appointment_id,omitempty"`
	Items         PrescriptionItems `gorm:"type:jsonb" json:"items,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	Status        string            `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
