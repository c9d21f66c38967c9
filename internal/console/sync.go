package console

import (
	"context"
	"fmt"
	"time"

	"hospital-admin-console/internal/client"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/store"
)

// syncPageLimit bounds each collection pull. One page per collection; the
// snapshot mirrors what the console can display, not the full database.
const syncPageLimit = 500

// Sync pulls the six snapshot collections from the API and replaces the local
// snapshot in one write. Any failed pull aborts the sync and leaves the
// previous snapshot intact.
func Sync(ctx context.Context, c *client.Client, s *store.Store) error {
	opts := client.ListOptions{Page: 1, Limit: syncPageLimit}

	doctors, err := c.ListDoctors(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync doctors: %w", err)
	}
	nurses, err := c.ListNurses(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync nurses: %w", err)
	}
	patients, err := c.ListPatients(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync patients: %w", err)
	}
	appointments, err := c.ListAppointments(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync appointments: %w", err)
	}
	rooms, err := c.ListRooms(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync rooms: %w", err)
	}
	departments, err := c.ListDepartments(ctx, opts)
	if err != nil {
		return fmt.Errorf("sync departments: %w", err)
	}

	snap := store.Snapshot{
		Doctors:      make([]entity.Doctor, 0, len(doctors.Content)),
		Nurses:       make([]entity.Nurse, 0, len(nurses.Content)),
		Patients:     make([]entity.Patient, 0, len(patients.Content)),
		Appointments: make([]entity.Appointment, 0, len(appointments.Content)),
		Rooms:        make([]entity.Room, 0, len(rooms.Content)),
		Departments:  make([]entity.Department, 0, len(departments.Content)),
	}

	for _, d := range doctors.Content {
		snap.Doctors = append(snap.Doctors, entity.Doctor{
			ID:              d.ID,
			Name:            d.Name,
			Email:           d.Email,
			Phone:           d.Phone,
			Specialization:  d.Specialization,
			Department:      d.Department,
			ExperienceYears: d.ExperienceYears,
			Status:          d.Status,
			CreatedAt:       d.CreatedAt,
			UpdatedAt:       d.UpdatedAt,
		})
	}
	for _, n := range nurses.Content {
		snap.Nurses = append(snap.Nurses, entity.Nurse{
			ID:         n.ID,
			Name:       n.Name,
			Email:      n.Email,
			Phone:      n.Phone,
			Department: n.Department,
			Shift:      n.Shift,
			Status:     n.Status,
			CreatedAt:  n.CreatedAt,
			UpdatedAt:  n.UpdatedAt,
		})
	}
	for _, p := range patients.Content {
		snap.Patients = append(snap.Patients, entity.Patient{
			ID:             p.ID,
			Name:           p.Name,
			Email:          p.Email,
			Phone:          p.Phone,
			DateOfBirth:    p.DateOfBirth,
			Gender:         p.Gender,
			BloodGroup:     p.BloodGroup,
			Address:        p.Address,
			VitalSigns:     p.VitalSigns,
			MedicalHistory: p.MedicalHistory,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}
	for _, appt := range appointments.Content {
		date, err := time.Parse("2006-01-02", appt.Date)
		if err != nil {
			return fmt.Errorf("sync appointments: bad date %q: %w", appt.Date, err)
		}
		snap.Appointments = append(snap.Appointments, entity.Appointment{
			ID:        appt.ID,
			PatientID: appt.PatientID,
			DoctorID:  appt.DoctorID,
			Date:      date,
			Time:      appt.Time,
			Type:      appt.Type,
			Status:    entity.AppointmentStatus(appt.Status),
			Notes:     appt.Notes,
			CreatedAt: appt.CreatedAt,
			UpdatedAt: appt.UpdatedAt,
		})
	}
	for _, room := range rooms.Content {
		snap.Rooms = append(snap.Rooms, entity.Room{
			ID:        room.ID,
			Number:    room.Number,
			Ward:      room.Ward,
			Type:      room.Type,
			Capacity:  room.Capacity,
			Status:    room.Status,
			UpdatedAt: room.UpdatedAt,
		})
	}
	for _, dept := range departments.Content {
		snap.Departments = append(snap.Departments, entity.Department{
			ID:          dept.ID,
			Name:        dept.Name,
			Description: dept.Description,
			Floor:       dept.Floor,
			UpdatedAt:   dept.UpdatedAt,
		})
	}

	return s.ReplaceSnapshot(ctx, snap)
}
