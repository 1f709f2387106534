package usecase

import (
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecase(f *fixture) AppointmentUsecase {
	return NewAppointmentUsecase(f.log, f.appointments, f.patients, f.doctors, f.audit, f.cache, f.clock)
}

func TestAppointmentUsecase_Create(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")

	res, err := uc.Create(f.ctx, &dto.CreateAppointmentRequest{
		PatientID: p.ID.String(),
		DoctorID:  d.ID.String(),
		Date:      "2024-05-10",
		Time:      "14:30",
		Type:      "Check-up",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", res.PatientName)
	assert.Equal(t, "Dr. Who", res.DoctorName)
	assert.Equal(t, entity.AppointmentStatusScheduled, res.Status)
	assert.Equal(t, defaultAppointmentDuration, res.Duration)
	assert.Equal(t, 1, f.cache.invalidations)
}

func TestAppointmentUsecase_CreateRequiresParticipants(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")

	req := dto.CreateAppointmentRequest{Date: "2024-05-10", Time: "10:00", Type: "Check-up"}

	req.PatientID, req.DoctorID = uuid.NewString(), d.ID.String()
	_, err := uc.Create(f.ctx, &req)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	req.PatientID, req.DoctorID = p.ID.String(), uuid.NewString()
	_, err = uc.Create(f.ctx, &req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	all, err := f.appointments.FindAll(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAppointmentUsecase_TodaySortedByTime(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")

	f.addAppointment(t, p, d, date("2024-05-10"), "15:00")
	f.addAppointment(t, p, d, date("2024-05-11"), "08:00")
	f.addAppointment(t, p, d, date("2024-05-10"), "09:15")

	today, err := uc.Today(f.ctx)
	require.NoError(t, err)

	require.Len(t, today, 2)
	assert.Equal(t, "09:15", today[0].Time)
	assert.Equal(t, "15:00", today[1].Time)
}

func TestAppointmentUsecase_Recent(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")

	for _, at := range []string{"08:00", "09:00", "10:00"} {
		f.addAppointment(t, p, d, date("2024-05-01"), at)
	}

	recent, err := uc.Recent(f.ctx, 2)
	require.NoError(t, err)

	require.Len(t, recent, 2)
	assert.Equal(t, "10:00", recent[0].Time, "newest created first")
}

func TestAppointmentUsecase_ListByPatientLatestSlotFirst(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	other := f.addPatient(t, "Jane Roe")
	d := f.addDoctor(t, "Dr. Who", "General")

	f.addAppointment(t, p, d, date("2024-06-01"), "09:00")
	f.addAppointment(t, p, d, date("2024-07-01"), "08:00")
	f.addAppointment(t, p, d, date("2024-07-01"), "16:00")
	f.addAppointment(t, other, d, date("2024-08-01"), "08:00")

	page, err := uc.ListByPatient(f.ctx, p.ID, listquery.Query{Page: 1, PageSize: 10})
	require.NoError(t, err)

	require.Equal(t, 3, page.Total)
	assert.Equal(t, "2024-07-01", page.Items[0].Date)
	assert.Equal(t, "16:00", page.Items[0].Time)
	assert.Equal(t, "2024-06-01", page.Items[2].Date)

	_, err = uc.ListByPatient(f.ctx, uuid.New(), listquery.Query{})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")
	a := f.addAppointment(t, p, d, date("2024-05-10"), "10:00")

	res, err := uc.UpdateStatus(f.ctx, a.ID, entity.AppointmentStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, res.Status)

	_, err = uc.UpdateStatus(f.ctx, a.ID, "done")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = uc.UpdateStatus(f.ctx, uuid.New(), entity.AppointmentStatusCancelled)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUsecase_UpdateRenamesParticipants(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	p := f.addPatient(t, "John Doe")
	d := f.addDoctor(t, "Dr. Who", "General")
	d2 := f.addDoctor(t, "Dr. Watson", "General")
	a := f.addAppointment(t, p, d, date("2024-05-10"), "10:00")

	res, err := uc.Update(f.ctx, a.ID, &dto.UpdateAppointmentRequest{DoctorID: ptr(d2.ID.String()), Date: ptr("2024-05-12")})
	require.NoError(t, err)

	assert.Equal(t, "Dr. Watson", res.DoctorName)
	assert.Equal(t, "2024-05-12", res.Date)
	assert.Equal(t, 1, f.cache.invalidations, "date change moves today's count")
}
