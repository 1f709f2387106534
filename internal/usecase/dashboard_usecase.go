package usecase

import (
	"context"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	// Statistics serves the counters from cache, computing them on a miss.
	Statistics(ctx context.Context) (*dto.DashboardStatsResponse, error)
	// RefreshStatistics recomputes the counters and replaces the cached copy.
	RefreshStatistics(ctx context.Context) (*dto.DashboardStatsResponse, error)
	RecentAppointments(ctx context.Context, limit int) ([]dto.AppointmentResponse, error)
	TodayAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	Revenue(ctx context.Context) (*dto.RevenueResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	billingRepo     repository.BillingTransactionRepository
	statsCache      service.StatsCache
	now             Clock
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	billingRepo repository.BillingTransactionRepository,
	statsCache service.StatsCache,
	now Clock,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		billingRepo:     billingRepo,
		statsCache:      statsCache,
		now:             now,
	}
}

func (u *dashboardUsecase) Statistics(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, ok, err := u.statsCache.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to read cached dashboard statistics: %+v", err)
	}
	if ok {
		return converter.DashboardStatsToResponse(stats), nil
	}
	return u.RefreshStatistics(ctx)
}

func (u *dashboardUsecase) RefreshStatistics(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	stats := &entity.DashboardStats{
		TotalPatients:     len(patients),
		TotalDoctors:      len(doctors),
		TotalAppointments: len(appointments),
		TodayAppointments: len(appointmentsOn(appointments, today(u.now))),
	}

	if err := u.statsCache.Set(ctx, stats); err != nil {
		u.log.Warnf("Failed to cache dashboard statistics: %+v", err)
	}

	return converter.DashboardStatsToResponse(stats), nil
}

func (u *dashboardUsecase) RecentAppointments(ctx context.Context, limit int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.ToSlice(firstN(appointments, limit), converter.AppointmentToResponse), nil
}

func (u *dashboardUsecase) TodayAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.ToSlice(appointmentsOn(appointments, today(u.now)), converter.AppointmentToResponse), nil
}

// Revenue is the monthly revenue of the current year.
func (u *dashboardUsecase) Revenue(ctx context.Context) (*dto.RevenueResponse, error) {
	transactions, err := u.billingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find billing transactions: %+v", err)
		return nil, err
	}
	return revenueReport(transactions, u.now().Year()), nil
}
