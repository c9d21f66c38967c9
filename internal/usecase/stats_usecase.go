package usecase

import (
	"context"

	"hospital-admin-console/internal/delivery/dto"
	"hospital-admin-console/internal/domain/entity"
	"hospital-admin-console/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type StatsUsecase interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type statsUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	nurseRepo       repository.NurseRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewStatsUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	nurseRepo repository.NurseRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) StatsUsecase {
	return &statsUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		nurseRepo:       nurseRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *statsUsecase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	doctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	nurses, err := u.nurseRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count nurses: %+v", err)
		return nil, err
	}

	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	byStatus, err := u.appointmentRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}

	// Every status appears in the response, zero or not
	statusCounts := make(map[string]int64, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		statusCounts[string(status)] = byStatus[status]
	}

	return &dto.DashboardStatsResponse{
		TotalDoctors:         doctors,
		TotalNurses:          nurses,
		TotalPatients:        patients,
		TotalAppointments:    appointments,
		AppointmentsByStatus: statusCounts,
	}, nil
}
