package store

import "hospital-admin-console/internal/domain/entity"

// Snapshot is the complete serialised state of all six collections at one
// point in time. Every mutation rewrites the whole snapshot; there is no
// partial persistence.
type Snapshot struct {
	Doctors      []entity.Doctor      `json:"doctors"`
	Nurses       []entity.Nurse       `json:"nurses"`
	Patients     []entity.Patient     `json:"patients"`
	Appointments []entity.Appointment `json:"appointments"`
	Rooms        []entity.Room        `json:"rooms"`
	Departments  []entity.Department  `json:"departments"`
}
