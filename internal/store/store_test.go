package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hospital-admin-console/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

type failingStorage struct {
	inner   Storage
	failSet bool
}

func (s *failingStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Get(ctx, key)
}

func (s *failingStorage) Set(ctx context.Context, key string, data []byte) error {
	if s.failSet {
		return ErrStorageUnavailable
	}
	return s.inner.Set(ctx, key, data)
}

func newTestStore() (*Store, *MemoryStorage) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	mem := NewMemoryStorage()
	return New(mem, log), mem
}

func TestAddDoctorAssignsSequentialIDs(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	first, err := s.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})
	if err != nil {
		t.Fatalf("AddDoctor: %v", err)
	}
	second, err := s.AddDoctor(ctx, entity.Doctor{Name: "Bob Reyes", Email: "bob@hospital.test"})
	if err != nil {
		t.Fatalf("AddDoctor: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.Status != entity.StatusActive {
		t.Errorf("expected default status %q, got %q", entity.StatusActive, first.Status)
	}
}

func TestAddDoctorRequiresNameAndEmail(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.AddDoctor(context.Background(), entity.Doctor{Name: "No Email"})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	if len(s.Doctors()) != 0 {
		t.Fatal("invalid record must not be inserted")
	}
}

func TestAddAppointmentDefaultsToScheduled(t *testing.T) {
	s, _ := newTestStore()

	appt, err := s.AddAppointment(context.Background(), entity.Appointment{
		PatientID: 10,
		DoctorID:  20,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "09:30",
	})
	if err != nil {
		t.Fatalf("AddAppointment: %v", err)
	}
	if appt.Status != entity.AppointmentStatusScheduled {
		t.Errorf("expected scheduled, got %q", appt.Status)
	}
}

func TestUpdateDoctorMergesNonEmptyFields(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	created, _ := s.AddDoctor(ctx, entity.Doctor{
		Name:           "Alice Wong",
		Email:          "alice@hospital.test",
		Phone:          "555-0101",
		Specialization: "Cardiology",
	})

	updated, err := s.UpdateDoctor(ctx, created.ID, DoctorPatch{Phone: "555-0202"})
	if err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}

	if updated.Phone != "555-0202" {
		t.Errorf("phone not updated: %q", updated.Phone)
	}
	if updated.Name != "Alice Wong" || updated.Specialization != "Cardiology" {
		t.Errorf("untouched fields must survive a partial update: %+v", updated)
	}
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})
	before := s.Doctors()

	_, err := s.UpdateDoctor(ctx, 999, DoctorPatch{Name: "Ghost"})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	after := s.Doctors()
	if len(after) != len(before) || after[0].Name != before[0].Name {
		t.Fatal("collection changed on update of missing id")
	}
}

func TestDeleteMissingIDReturnsNotFound(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	created, _ := s.AddPatient(ctx, entity.Patient{Name: "Carol Diaz"})
	if err := s.DeletePatient(ctx, created.ID); err != nil {
		t.Fatalf("DeletePatient: %v", err)
	}
	if err := s.DeletePatient(ctx, created.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("second delete must report not found, got %v", err)
	}
}

func TestDeleteDoesNotCascadeToAppointments(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	doctor, _ := s.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})
	s.AddAppointment(ctx, entity.Appointment{
		PatientID: 1,
		DoctorID:  doctor.ID,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
	})

	if err := s.DeleteDoctor(ctx, doctor.ID); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}

	if len(s.Appointments()) != 1 {
		t.Fatal("appointment referencing the deleted doctor must survive")
	}
	if name := s.DoctorName(doctor.ID); name != NotFoundName {
		t.Errorf("dangling reference must resolve to %q, got %q", NotFoundName, name)
	}
}

func TestHydrateRestoresOrderAndSeedsIDs(t *testing.T) {
	first, mem := newTestStore()
	ctx := context.Background()

	first.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})
	first.AddDoctor(ctx, entity.Doctor{Name: "Bob Reyes", Email: "bob@hospital.test"})
	first.AddNurse(ctx, entity.Nurse{Name: "Nadia Khan", Email: "nadia@hospital.test"})

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	second := New(mem, log)
	if err := second.Hydrate(ctx); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}

	doctors := second.Doctors()
	if len(doctors) != 2 || doctors[0].Name != "Alice Wong" || doctors[1].Name != "Bob Reyes" {
		t.Fatalf("hydrated doctors out of order: %+v", doctors)
	}

	next, err := second.AddDoctor(ctx, entity.Doctor{Name: "Dana Fox", Email: "dana@hospital.test"})
	if err != nil {
		t.Fatalf("AddDoctor after hydrate: %v", err)
	}
	if next.ID <= 3 {
		t.Errorf("id counter must resume past hydrated max, got %d", next.ID)
	}
}

func TestHydrateAbsentSnapshotStartsEmpty(t *testing.T) {
	s, _ := newTestStore()
	if err := s.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate of empty storage: %v", err)
	}
	if len(s.Doctors()) != 0 {
		t.Fatal("expected empty store")
	}
}

func TestHydrateCorruptSnapshotReportsStorageUnavailable(t *testing.T) {
	s, mem := newTestStore()
	ctx := context.Background()

	mem.Set(ctx, snapshotKey, []byte("{not json"))
	if err := s.Hydrate(ctx); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestPersistFailureEntersDegradedMode(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	failing := &failingStorage{inner: NewMemoryStorage(), failSet: true}
	s := New(failing, log)
	ctx := context.Background()

	created, err := s.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})
	if err != nil {
		t.Fatalf("mutation must succeed in memory even when persistence fails: %v", err)
	}
	if !s.Degraded() {
		t.Fatal("store must report degraded mode after a failed persist")
	}
	if len(s.Doctors()) != 1 || s.Doctors()[0].ID != created.ID {
		t.Fatal("in-memory state must hold the record")
	}

	failing.failSet = false
	s.AddNurse(ctx, entity.Nurse{Name: "Nadia Khan", Email: "nadia@hospital.test"})
	if s.Degraded() {
		t.Fatal("degraded flag must clear once persistence recovers")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, mem := newTestStore()
	ctx := context.Background()

	s.AddPatient(ctx, entity.Patient{Name: "Carol Diaz", BloodGroup: "O+"})

	data, err := mem.Get(ctx, snapshotKey)
	if err != nil || data == nil {
		t.Fatalf("snapshot missing after mutation: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if len(snap.Patients) != 1 || snap.Patients[0].BloodGroup != "O+" {
		t.Fatalf("unexpected snapshot contents: %+v", snap.Patients)
	}
}

func TestReplaceSnapshotSwapsState(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.AddDoctor(ctx, entity.Doctor{Name: "Old Doctor", Email: "old@hospital.test"})

	err := s.ReplaceSnapshot(ctx, Snapshot{
		Doctors: []entity.Doctor{{ID: 7, Name: "Synced Doctor", Email: "sync@hospital.test"}},
		Rooms:   []entity.Room{{ID: 3, Number: "101A", Ward: "General"}},
	})
	if err != nil {
		t.Fatalf("ReplaceSnapshot: %v", err)
	}

	doctors := s.Doctors()
	if len(doctors) != 1 || doctors[0].Name != "Synced Doctor" {
		t.Fatalf("replace did not swap doctors: %+v", doctors)
	}
	if len(s.Rooms()) != 1 {
		t.Fatal("replace did not swap rooms")
	}

	next, _ := s.AddDoctor(ctx, entity.Doctor{Name: "After Sync", Email: "after@hospital.test"})
	if next.ID != 8 {
		t.Errorf("id counter must reseed from replaced snapshot, got %d", next.ID)
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	s.AddDoctor(ctx, entity.Doctor{Name: "Alice Wong", Email: "alice@hospital.test"})

	out := s.Doctors()
	out[0].Name = "Mutated"

	if s.Doctors()[0].Name != "Alice Wong" {
		t.Fatal("callers must not be able to mutate the backing slice")
	}
}
