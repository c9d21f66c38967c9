package entity

import "testing"

func TestCountAppointmentsByStatus(t *testing.T) {
	appointments := []Appointment{
		{Status: AppointmentStatusScheduled},
		{Status: AppointmentStatusScheduled},
		{Status: AppointmentStatusConfirmed},
		{Status: AppointmentStatusCancelled},
	}

	counts := CountAppointmentsByStatus(appointments)

	if counts[AppointmentStatusScheduled] != 2 {
		t.Errorf("scheduled: got %d", counts[AppointmentStatusScheduled])
	}
	if counts[AppointmentStatusConfirmed] != 1 {
		t.Errorf("confirmed: got %d", counts[AppointmentStatusConfirmed])
	}
	if counts[AppointmentStatusCancelled] != 1 {
		t.Errorf("cancelled: got %d", counts[AppointmentStatusCancelled])
	}
	if counts[AppointmentStatusCompleted] != 0 {
		t.Errorf("completed must be present with zero, got %d", counts[AppointmentStatusCompleted])
	}
}

func TestCountAppointmentsByStatusEmptyInput(t *testing.T) {
	counts := CountAppointmentsByStatus(nil)
	if len(counts) != len(AppointmentStatuses) {
		t.Fatalf("all statuses must appear, got %d keys", len(counts))
	}
	for status, n := range counts {
		if n != 0 {
			t.Errorf("%s: expected 0, got %d", status, n)
		}
	}
}

func TestAppointmentTransitions(t *testing.T) {
	a := Appointment{Status: AppointmentStatusScheduled}
	if !a.IsScheduled() {
		t.Fatal("new appointment must report scheduled")
	}

	a.Confirm()
	if a.Status != AppointmentStatusConfirmed {
		t.Errorf("after Confirm: %q", a.Status)
	}

	a.Complete()
	if !a.IsCompleted() {
		t.Errorf("after Complete: %q", a.Status)
	}

	a.Cancel()
	if !a.IsCancelled() {
		t.Errorf("after Cancel: %q", a.Status)
	}
}
