package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hospital-admin-console/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const snapshotKey = "hospital:snapshot"

// NotFoundName is what weak-reference lookups resolve to when the referenced
// record no longer exists (deletes never cascade).
const NotFoundName = "(not found)"

var (
	// ErrRecordNotFound is returned by updates and deletes against ids that
	// are not in the collection. The collection is left untouched.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned when a record fails required-field
	// validation at the store boundary.
	ErrInvalidRecord = errors.New("invalid record")
)

// Store is the offline/demo entity store: six in-memory collections mirrored
// to a single persisted snapshot after every mutation. One mutex serialises
// mutate-plus-persist, so concurrent writers cannot lose updates.
//
// Ids are assigned from a monotonic in-process counter seeded from the
// hydrated snapshot. Persistence failures are logged and the store continues
// memory-only for the rest of the session.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     *logrus.Logger

	nextID   int64
	degraded bool

	doctors      collection[entity.Doctor]
	nurses       collection[entity.Nurse]
	patients     collection[entity.Patient]
	appointments collection[entity.Appointment]
	rooms        collection[entity.Room]
	departments  collection[entity.Department]
}

func New(storage Storage, log *logrus.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log,
		nextID:  1,
		doctors: newCollection(
			func(d *entity.Doctor) int64 { return d.ID },
			func(d *entity.Doctor, id int64) { d.ID = id },
		),
		nurses: newCollection(
			func(n *entity.Nurse) int64 { return n.ID },
			func(n *entity.Nurse, id int64) { n.ID = id },
		),
		patients: newCollection(
			func(p *entity.Patient) int64 { return p.ID },
			func(p *entity.Patient, id int64) { p.ID = id },
		),
		appointments: newCollection(
			func(a *entity.Appointment) int64 { return a.ID },
			func(a *entity.Appointment, id int64) { a.ID = id },
		),
		rooms: newCollection(
			func(r *entity.Room) int64 { return r.ID },
			func(r *entity.Room, id int64) { r.ID = id },
		),
		departments: newCollection(
			func(d *entity.Department) int64 { return d.ID },
			func(d *entity.Department, id int64) { d.ID = id },
		),
	}
}

// Hydrate loads the persisted snapshot. An absent snapshot leaves every
// collection empty; a read or decode failure is reported as
// ErrStorageUnavailable and the store starts empty.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: corrupt snapshot: %v", ErrStorageUnavailable, err)
	}

	s.applySnapshot(&snap)
	return nil
}

// Snapshot returns a copy of the complete current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ReplaceSnapshot swaps in a full snapshot (used by the offline sync) and
// persists it.
func (s *Store) ReplaceSnapshot(ctx context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySnapshot(&snap)
	s.persistLocked(ctx)
	return nil
}

// Degraded reports whether a persistence failure has put the store into
// memory-only mode.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Store) applySnapshot(snap *Snapshot) {
	s.doctors.replace(snap.Doctors)
	s.nurses.replace(snap.Nurses)
	s.patients.replace(snap.Patients)
	s.appointments.replace(snap.Appointments)
	s.rooms.replace(snap.Rooms)
	s.departments.replace(snap.Departments)

	s.nextID = 1
	for _, max := range []int64{
		s.doctors.maxID(), s.nurses.maxID(), s.patients.maxID(),
		s.appointments.maxID(), s.rooms.maxID(), s.departments.maxID(),
	} {
		if max >= s.nextID {
			s.nextID = max + 1
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Doctors:      s.doctors.all(),
		Nurses:       s.nurses.all(),
		Patients:     s.patients.all(),
		Appointments: s.appointments.all(),
		Rooms:        s.rooms.all(),
		Departments:  s.departments.all(),
	}
}

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// persistLocked rewrites the full snapshot. On failure the mutation stands,
// a warning is logged once, and the store runs memory-only from then on.
func (s *Store) persistLocked(ctx context.Context) {
	snap := s.snapshotLocked()
	data, err := json.Marshal(&snap)
	if err == nil {
		err = s.storage.Set(ctx, snapshotKey, data)
	}
	if err != nil {
		if !s.degraded {
			s.log.Warnf("Failed to persist snapshot, continuing memory-only: %+v", err)
			s.degraded = true
		}
		return
	}
	s.degraded = false
}

// ---- Doctors ----

// DoctorPatch carries a partial doctor update; empty fields keep their
// current value.
type DoctorPatch struct {
	Name            string
	Email           string
	Phone           string
	Specialization  string
	Department      string
	ExperienceYears *int
	Status          string
}

func (s *Store) AddDoctor(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error) {
	if doctor.Name == "" || doctor.Email == "" {
		return entity.Doctor{}, fmt.Errorf("%w: doctor requires name and email", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doctor.Status == "" {
		doctor.Status = entity.StatusActive
	}
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	created := s.doctors.insert(doctor, s.allocID())
	s.persistLocked(ctx)
	return created, nil
}

func (s *Store) UpdateDoctor(ctx context.Context, id int64, patch DoctorPatch) (entity.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.doctors.update(id, func(d *entity.Doctor) {
		if patch.Name != "" {
			d.Name = patch.Name
		}
		if patch.Email != "" {
			d.Email = patch.Email
		}
		if patch.Phone != "" {
			d.Phone = patch.Phone
		}
		if patch.Specialization != "" {
			d.Specialization = patch.Specialization
		}
		if patch.Department != "" {
			d.Department = patch.Department
		}
		if patch.ExperienceYears != nil {
			d.ExperienceYears = *patch.ExperienceYears
		}
		if patch.Status != "" {
			d.Status = patch.Status
		}
		d.UpdatedAt = time.Now()
	})
	if !ok {
		return entity.Doctor{}, ErrRecordNotFound
	}

	s.persistLocked(ctx)
	updated, _ := s.doctors.find(id)
	return updated, nil
}

func (s *Store) DeleteDoctor(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doctors.remove(id) {
		return ErrRecordNotFound
	}
	s.persistLocked(ctx)
	return nil
}

func (s *Store) Doctors() []entity.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctors.all()
}

// DoctorName resolves a weak doctor reference for display. Dangling ids
// yield the not-found placeholder, never an error.
func (s *Store) DoctorName(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doctor, ok := s.doctors.find(id); ok {
		return doctor.Name
	}
	return NotFoundName
}

// ---- Nurses ----

type NursePatch struct {
	Name       string
	Email      string
	Phone      string
	Department string
	Shift      string
	Status     string
}

func (s *Store) AddNurse(ctx context.Context, nurse entity.Nurse) (entity.Nurse, error) {
	if nurse.Name == "" || nurse.Email == "" {
		return entity.Nurse{}, fmt.Errorf("%w: nurse requires name and email", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if nurse.Status == "" {
		nurse.Status = entity.StatusActive
	}
	now := time.Now()
	nurse.CreatedAt = now
	nurse.UpdatedAt = now

	created := s.nurses.insert(nurse, s.allocID())
	s.persistLocked(ctx)
	return created, nil
}

func (s *Store) UpdateNurse(ctx context.Context, id int64, patch NursePatch) (entity.Nurse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.nurses.update(id, func(n *entity.Nurse) {
		if patch.Name != "" {
			n.Name = patch.Name
		}
		if patch.Email != "" {
			n.Email = patch.Email
		}
		if patch.Phone != "" {
			n.Phone = patch.Phone
		}
		if patch.Department != "" {
			n.Department = patch.Department
		}
		if patch.Shift != "" {
			n.Shift = patch.Shift
		}
		if patch.Status != "" {
			n.Status = patch.Status
		}
		n.UpdatedAt = time.Now()
	})
	if !ok {
		return entity.Nurse{}, ErrRecordNotFound
	}

	s.persistLocked(ctx)
	updated, _ := s.nurses.find(id)
	return updated, nil
}

func (s *Store) DeleteNurse(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.nurses.remove(id) {
		return ErrRecordNotFound
	}
	s.persistLocked(ctx)
	return nil
}

func (s *Store) Nurses() []entity.Nurse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nurses.all()
}

// ---- Patients ----

type PatientPatch struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	BloodGroup     string
	MedicalHistory string
	VitalSigns     entity.JSON
	Status         string
}

func (s *Store) AddPatient(ctx context.Context, patient entity.Patient) (entity.Patient, error) {
	if patient.Name == "" {
		return entity.Patient{}, fmt.Errorf("%w: patient requires name", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if patient.Status == "" {
		patient.Status = entity.StatusActive
	}
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	created := s.patients.insert(patient, s.allocID())
	s.persistLocked(ctx)
	return created, nil
}

func (s *Store) UpdatePatient(ctx context.Context, id int64, patch PatientPatch) (entity.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.patients.update(id, func(p *entity.Patient) {
		if patch.Name != "" {
			p.Name = patch.Name
		}
		if patch.Email != "" {
			p.Email = patch.Email
		}
		if patch.Phone != "" {
			p.Phone = patch.Phone
		}
		if patch.Address != "" {
			p.Address = patch.Address
		}
		if patch.BloodGroup != "" {
			p.BloodGroup = patch.BloodGroup
		}
		if patch.MedicalHistory != "" {
			p.MedicalHistory = patch.MedicalHistory
		}
		if patch.VitalSigns != nil {
			p.VitalSigns = patch.VitalSigns
		}
		if patch.Status != "" {
			p.Status = patch.Status
		}
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return entity.Patient{}, ErrRecordNotFound
	}

	s.persistLocked(ctx)
	updated, _ := s.patients.find(id)
	return updated, nil
}

func (s *Store) DeletePatient(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.patients.remove(id) {
		return ErrRecordNotFound
	}
	s.persistLocked(ctx)
	return nil
}

func (s *Store) Patients() []entity.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patients.all()
}

func (s *Store) PatientName(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patient, ok := s.patients.find(id); ok {
		return patient.Name
	}
	return NotFoundName
}

// ---- Appointments ----

type AppointmentPatch struct {
	Date   *time.Time
	Time   string
	Type   string
	Notes  string
	Status entity.AppointmentStatus
}

func (s *Store) AddAppointment(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error) {
	if appointment.PatientID == 0 || appointment.DoctorID == 0 || appointment.Date.IsZero() || appointment.Time == "" {
		return entity.Appointment{}, fmt.Errorf("%w: appointment requires patient, doctor, date and time", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusScheduled
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	created := s.appointments.insert(appointment, s.allocID())
	s.persistLocked(ctx)
	return created, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id int64, patch AppointmentPatch) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.appointments.update(id, func(a *entity.Appointment) {
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Time != "" {
			a.Time = patch.Time
		}
		if patch.Type != "" {
			a.Type = patch.Type
		}
		if patch.Notes != "" {
			a.Notes = patch.Notes
		}
		if patch.Status != "" {
			a.Status = patch.Status
		}
		a.UpdatedAt = time.Now()
	})
	if !ok {
		return entity.Appointment{}, ErrRecordNotFound
	}

	s.persistLocked(ctx)
	updated, _ := s.appointments.find(id)
	return updated, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.appointments.remove(id) {
		return ErrRecordNotFound
	}
	s.persistLocked(ctx)
	return nil
}

func (s *Store) Appointments() []entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments.all()
}

// ---- Rooms and departments (read-only, refreshed by sync) ----

func (s *Store) Rooms() []entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms.all()
}

func (s *Store) Departments() []entity.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.departments.all()
}
