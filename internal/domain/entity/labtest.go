package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LabTestStatus represents the status of a lab test
type LabTestStatus string

const (
	LabTestStatusPending    LabTestStatus = "pending"
	LabTestStatusInProgress LabTestStatus = "in_progress"
	LabTestStatusCompleted  LabTestStatus = "completed"
)

// LabTest represents a laboratory test order and its result
type LabTest struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   int64           `gorm:"not null;index" json:"patient_id"`
	DoctorID    int64           `gorm:"not null;index" json:"doctor_id"`
	TestName    string          `gorm:"type:varchar(255);not null" json:"test_name"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Status      LabTestStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Result      string          `gorm:"type:text" json:"result,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	RequestedAt time.Time       `gorm:"autoCreateTime" json:"requested_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LabTest) TableName() string {
	return "lab_tests"
}

// IsCompleted checks if the test has a final result
func (t *LabTest) IsCompleted() bool {
	return t.Status == LabTestStatusCompleted
}
