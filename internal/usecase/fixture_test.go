package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/repository/memory"
	"hospital-management/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// May 10th 2024, 09:00 UTC
var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type fakeStatsCache struct {
	stats         *entity.DashboardStats
	gets          int
	invalidations int
}

func (c *fakeStatsCache) Get(context.Context) (*entity.DashboardStats, bool, error) {
	c.gets++
	if c.stats == nil {
		return nil, false, nil
	}
	stats := *c.stats
	return &stats, true, nil
}

func (c *fakeStatsCache) Set(_ context.Context, stats *entity.DashboardStats) error {
	copied := *stats
	c.stats = &copied
	return nil
}

func (c *fakeStatsCache) Invalidate(context.Context) error {
	c.stats = nil
	c.invalidations++
	return nil
}

type fixture struct {
	ctx          context.Context
	log          *logrus.Logger
	clock        Clock
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	appointments repository.AppointmentRepository
	admissions   repository.AdmissionRepository
	medicines    repository.MedicineRepository
	labReports   repository.LabReportRepository
	staff        repository.StaffRepository
	billing      repository.BillingTransactionRepository
	auditLogs    repository.AuditLogRepository
	users        repository.UserRepository
	audit        service.AuditService
	cache        *fakeStatsCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	// every repository gets its own stepping clock so records created later
	// sort first
	opts := func() []memory.Option {
		return []memory.Option{memory.WithClock(memory.SteppingClock(fixedNow, time.Second))}
	}

	auditLogs := memory.NewAuditLogRepository(opts()...)
	return &fixture{
		ctx:          context.Background(),
		log:          log,
		clock:        func() time.Time { return fixedNow },
		patients:     memory.NewPatientRepository(opts()...),
		doctors:      memory.NewDoctorRepository(opts()...),
		appointments: memory.NewAppointmentRepository(opts()...),
		admissions:   memory.NewAdmissionRepository(opts()...),
		medicines:    memory.NewMedicineRepository(opts()...),
		labReports:   memory.NewLabReportRepository(opts()...),
		staff:        memory.NewStaffRepository(opts()...),
		billing:      memory.NewBillingTransactionRepository(opts()...),
		auditLogs:    auditLogs,
		users:        memory.NewUserRepository(opts()...),
		audit:        service.NewAuditService(log, auditLogs),
		cache:        &fakeStatsCache{},
	}
}

func (f *fixture) addPatient(t *testing.T, name string) *entity.Patient {
	t.Helper()
	p := &entity.Patient{Name: name, Gender: "Female", Status: entity.StatusActive}
	require.NoError(t, f.patients.Create(f.ctx, p))
	return p
}

func (f *fixture) addDoctor(t *testing.T, name, specialization string) *entity.Doctor {
	t.Helper()
	d := &entity.Doctor{Name: name, Specialization: specialization, Status: entity.StatusActive}
	require.NoError(t, f.doctors.Create(f.ctx, d))
	return d
}

func (f *fixture) addAppointment(t *testing.T, p *entity.Patient, d *entity.Doctor, date time.Time, at string) *entity.Appointment {
	t.Helper()
	a := &entity.Appointment{
		PatientID:   p.ID,
		PatientName: p.Name,
		DoctorID:    d.ID,
		DoctorName:  d.Name,
		Date:        date,
		Time:        at,
		Type:        "Consultation",
		Status:      entity.AppointmentStatusScheduled,
	}
	require.NoError(t, f.appointments.Create(f.ctx, a))
	return a
}

func (f *fixture) auditActions(t *testing.T) []string {
	t.Helper()
	logs, err := f.auditLogs.FindAll(f.ctx)
	require.NoError(t, err)
	actions := make([]string, len(logs))
	for i, l := range logs {
		actions[i] = l.Action + ":" + l.Entity
	}
	return actions
}

func date(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
