package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardUsecase(f *fixture) DashboardUsecase {
	return NewDashboardUsecase(f.log, f.patients, f.doctors, f.appointments, f.billing, f.cache, f.clock)
}

func TestDashboardUsecase_StatisticsCached(t *testing.T) {
	f := newFixture(t)
	uc := newDashboardUsecase(f)
	p := f.addPatient(t, "John Doe")
	f.addPatient(t, "Jane Roe")
	d := f.addDoctor(t, "Dr. Who", "General")
	f.addAppointment(t, p, d, date("2024-05-10"), "09:00")
	f.addAppointment(t, p, d, date("2024-05-10"), "11:00")
	f.addAppointment(t, p, d, date("2024-05-09"), "11:00")

	stats, err := uc.Statistics(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 1, stats.TotalDoctors)
	assert.Equal(t, 3, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TodayAppointments)
	require.NotNil(t, f.cache.stats)

	f.addPatient(t, "Late Arrival")

	cached, err := uc.Statistics(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.TotalPatients, "served from cache")

	fresh, err := uc.RefreshStatistics(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.TotalPatients)
	assert.Equal(t, 3, f.cache.stats.TotalPatients)
}

func TestDashboardUsecase_PatientWritesInvalidateCache(t *testing.T) {
	f := newFixture(t)
	dashboard := newDashboardUsecase(f)
	patients := NewPatientUsecase(f.log, f.patients, f.audit, f.cache)
	p := f.addPatient(t, "John Doe")

	_, err := dashboard.Statistics(f.ctx)
	require.NoError(t, err)

	require.NoError(t, patients.Delete(f.ctx, p.ID))

	stats, err := dashboard.Statistics(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPatients)
}

func TestDashboardUsecase_TodayAndRecentAppointments(t *testing.T) {
	f := newFixture(t)
	uc := newDashboardUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")
	f.addAppointment(t, p, d, date("2024-05-10"), "16:00")
	f.addAppointment(t, p, d, date("2024-05-11"), "08:00")
	f.addAppointment(t, p, d, date("2024-05-10"), "08:30")

	todays, err := uc.TodayAppointments(f.ctx)
	require.NoError(t, err)
	require.Len(t, todays, 2)
	assert.Equal(t, "08:30", todays[0].Time)

	recent, err := uc.RecentAppointments(f.ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	revenue, err := uc.Revenue(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2024, revenue.Year)
	assert.True(t, revenue.Total.IsZero())
}
