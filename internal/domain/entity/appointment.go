package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every status in display order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// Appointment represents a scheduled visit. PatientID and DoctorID are weak
// references: lookup keys only, no FK constraint, no cascade on delete.
type Appointment struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64             `gorm:"not null;index" json:"patient_id"`
	DoctorID  int64             `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:varchar(10);not null" json:"time"`
	Type      string            `gorm:"type:varchar(50)" json:"type,omitempty"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes     string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment is still in its initial status
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// CountAppointmentsByStatus reduces a list of appointments into per-status
// counts. Every known status is present in the result, zero or not.
func CountAppointmentsByStatus(appointments []Appointment) map[AppointmentStatus]int {
	counts := make(map[AppointmentStatus]int, len(AppointmentStatuses))
	for _, status := range AppointmentStatuses {
		counts[status] = 0
	}
	for i := range appointments {
		counts[appointments[i].Status]++
	}
	return counts
}
