package usecase

import (
	"context"
	"errors"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAdmissionNotFound    = errors.New("admission not found")
	ErrAlreadyDischarged    = errors.New("patient already discharged")
	ErrInvalidDischargeDate = errors.New("discharge date is before admission date")
)

type AdmissionUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.AdmissionResponse], error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AdmissionResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error)
	Create(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error)
	Discharge(ctx context.Context, id uuid.UUID, req *dto.DischargeRequest) (*dto.AdmissionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type admissionUsecase struct {
	log           *logrus.Logger
	admissionRepo repository.AdmissionRepository
	participants  participants
	auditService  service.AuditService
	now           Clock
}

func NewAdmissionUsecase(
	log *logrus.Logger,
	admissionRepo repository.AdmissionRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	now Clock,
) AdmissionUsecase {
	return &admissionUsecase{
		log:           log,
		admissionRepo: admissionRepo,
		participants:  participants{patientRepo: patientRepo, doctorRepo: doctorRepo},
		auditService:  auditService,
		now:           now,
	}
}

func (u *admissionUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.AdmissionResponse], error) {
	admissions, err := u.admissionRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find admissions: %+v", err)
		return nil, err
	}

	res := listquery.Evaluate(admissions, q, entity.AdmissionSchema)
	return converter.ToPage(res, converter.AdmissionToResponse), nil
}

func (u *admissionUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.AdmissionResponse], error) {
	if _, err := u.participants.patient(ctx, patientID.String()); err != nil {
		return nil, err
	}
	return u.List(ctx, q.WithFilter(entity.FilterPatientID, patientID.String()))
}

func (u *admissionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AdmissionResponse, error) {
	admission, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) Create(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error) {
	admissionDate, err := parseDate(req.AdmissionDate)
	if err != nil {
		return nil, err
	}

	patient, doctor, err := u.participants.resolve(ctx, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	admission := &entity.Admission{
		PatientID:          patient.ID,
		PatientName:        patient.Name,
		DoctorID:           doctor.ID,
		DoctorName:         doctor.Name,
		RoomNumber:         req.RoomNumber,
		WardType:           req.WardType,
		AdmissionDate:      admissionDate,
		ReasonForAdmission: req.ReasonForAdmission,
		Diagnosis:          req.Diagnosis,
		TreatmentPlan:      req.TreatmentPlan,
		Status:             entity.AdmissionStatusActive,
		Notes:              req.Notes,
	}

	if err := u.admissionRepo.Create(ctx, admission); err != nil {
		u.log.Warnf("Failed to create admission: %+v", err)
		return nil, err
	}

	res := converter.AdmissionToResponse(admission)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityAdmission, admission.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *admissionUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error) {
	admission, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.AdmissionToResponse(admission)

	if req.AdmissionDate != nil {
		date, err := parseDate(*req.AdmissionDate)
		if err != nil {
			return nil, err
		}
		admission.AdmissionDate = date
	}
	if req.RoomNumber != nil {
		admission.RoomNumber = *req.RoomNumber
	}
	if req.WardType != nil {
		admission.WardType = *req.WardType
	}
	if req.ReasonForAdmission != nil {
		admission.ReasonForAdmission = *req.ReasonForAdmission
	}
	if req.Diagnosis != nil {
		admission.Diagnosis = *req.Diagnosis
	}
	if req.TreatmentPlan != nil {
		admission.TreatmentPlan = *req.TreatmentPlan
	}
	if req.Notes != nil {
		admission.Notes = *req.Notes
	}

	return u.save(ctx, admission, oldValue)
}

func (u *admissionUsecase) Discharge(ctx context.Context, id uuid.UUID, req *dto.DischargeRequest) (*dto.AdmissionResponse, error) {
	admission, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.IsDischarged() {
		return nil, ErrAlreadyDischarged
	}

	date := today(u.now)
	if req.DischargeDate != "" {
		if date, err = parseDate(req.DischargeDate); err != nil {
			return nil, err
		}
	}
	if date.Before(admission.AdmissionDate) {
		return nil, ErrInvalidDischargeDate
	}

	oldValue := converter.AdmissionToResponse(admission)
	admission.Discharge(date, req.DischargeNotes, req.DischargeSummary)

	return u.save(ctx, admission, oldValue)
}

func (u *admissionUsecase) save(ctx context.Context, admission *entity.Admission, oldValue *dto.AdmissionResponse) (*dto.AdmissionResponse, error) {
	if err := u.admissionRepo.Update(ctx, admission); err != nil {
		u.log.Warnf("Failed to update admission: %+v", err)
		return nil, err
	}

	newValue := converter.AdmissionToResponse(admission)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityAdmission, admission.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *admissionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	admission, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.admissionRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete admission: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityAdmission, id, converter.AdmissionToResponse(admission)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *admissionUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Admission, error) {
	admission, err := u.admissionRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find admission by ID: %+v", err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}
	return admission, nil
}
