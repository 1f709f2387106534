package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultAppointmentDuration = 30

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error)
	Today(ctx context.Context) ([]dto.AppointmentResponse, error)
	Recent(ctx context.Context, limit int) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	participants    participants
	auditService    service.AuditService
	statsCache      service.StatsCache
	now             Clock
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
	now Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		participants:    participants{patientRepo: patientRepo, doctorRepo: doctorRepo},
		auditService:    auditService,
		statsCache:      statsCache,
		now:             now,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	res := listquery.Evaluate(appointments, q, entity.AppointmentSchema)
	return converter.ToPage(res, converter.AppointmentToResponse), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error) {
	if _, err := u.participants.patient(ctx, patientID.String()); err != nil {
		return nil, err
	}
	return u.List(ctx, latestSlotsFirst(q.WithFilter(entity.FilterPatientID, patientID.String())))
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AppointmentResponse], error) {
	if _, err := u.participants.doctor(ctx, doctorID.String()); err != nil {
		return nil, err
	}
	return u.List(ctx, latestSlotsFirst(q.WithFilter(entity.FilterDoctorID, doctorID.String())))
}

// latestSlotsFirst orders by appointment date and time, newest first, unless
// the caller asked for another order.
func latestSlotsFirst(q listquery.Query) listquery.Query {
	if q.SortBy == "" {
		q.SortBy = entity.SortDate
		q.SortDesc = true
	}
	return q
}

func (u *appointmentUsecase) Today(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.ToSlice(appointmentsOn(appointments, today(u.now)), converter.AppointmentToResponse), nil
}

func (u *appointmentUsecase) Recent(ctx context.Context, limit int) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.ToSlice(firstN(appointments, limit), converter.AppointmentToResponse), nil
}

// appointmentsOn returns the appointments booked on day, earliest slot first.
func appointmentsOn(appointments []entity.Appointment, day time.Time) []entity.Appointment {
	out := make([]entity.Appointment, 0)
	for _, a := range appointments {
		if sameDay(a.Date, day) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, entity.CompareAppointmentSlots)
	return out
}

func firstN[T any](items []T, n int) []T {
	n = max(n, 0)
	if n < len(items) {
		return items[:n]
	}
	return items
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	patient, doctor, err := u.participants.resolve(ctx, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultAppointmentDuration
	}
	status := req.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        date,
		Time:        req.Time,
		Duration:    duration,
		Type:        req.Type,
		Status:      status,
		Symptoms:    req.Symptoms,
		Notes:       req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	res := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityAppointment, appointment.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	invalidateStats(ctx, u.log, u.statsCache)

	return res, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.AppointmentToResponse(appointment)

	if req.PatientID != nil {
		patient, err := u.participants.patient(ctx, *req.PatientID)
		if err != nil {
			return nil, err
		}
		appointment.PatientID = patient.ID
		appointment.PatientName = patient.Name
	}
	if req.DoctorID != nil {
		doctor, err := u.participants.doctor(ctx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		appointment.DoctorID = doctor.ID
		appointment.DoctorName = doctor.Name
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Symptoms != nil {
		appointment.Symptoms = *req.Symptoms
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	return u.save(ctx, appointment, oldValue)
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	if !entity.IsValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.AppointmentToResponse(appointment)

	appointment.Status = status
	return u.save(ctx, appointment, oldValue)
}

func (u *appointmentUsecase) save(ctx context.Context, appointment *entity.Appointment, oldValue *dto.AppointmentResponse) (*dto.AppointmentResponse, error) {
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityAppointment, appointment.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	if oldValue.Date != newValue.Date {
		invalidateStats(ctx, u.log, u.statsCache)
	}

	return newValue, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityAppointment, id, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	invalidateStats(ctx, u.log, u.statsCache)

	return nil
}

func (u *appointmentUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
