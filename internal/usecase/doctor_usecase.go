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
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.DoctorResponse], error)
	ListBySpecialization(ctx context.Context, specialization string, q listquery.Query) (*dto.PageResponse[dto.DoctorResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
	statsCache   service.StatsCache
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	statsCache service.StatsCache,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
		statsCache:   statsCache,
	}
}

func (u *doctorUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.DoctorResponse], error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	res := listquery.Evaluate(doctors, q, entity.DoctorSchema)
	return converter.ToPage(res, converter.DoctorToResponse), nil
}

func (u *doctorUsecase) ListBySpecialization(ctx context.Context, specialization string, q listquery.Query) (*dto.PageResponse[dto.DoctorResponse], error) {
	return u.List(ctx, q.WithFilter(entity.FilterSpecialization, specialization))
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	status := req.Status
	if status == "" {
		status = entity.StatusActive
	}

	doctor := &entity.Doctor{
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Qualifications: req.Qualifications,
		Phone:          req.Phone,
		Address:        req.Address,
		AvailableHours: req.AvailableHours,
		AvailableDays:  req.AvailableDays,
		Status:         status,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	res := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityDoctor, doctor.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	invalidateStats(ctx, u.log, u.statsCache)

	return res, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.DoctorToResponse(doctor)

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.Qualifications != nil {
		doctor.Qualifications = *req.Qualifications
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Address != nil {
		doctor.Address = *req.Address
	}
	if req.AvailableHours != nil {
		doctor.AvailableHours = *req.AvailableHours
	}
	if req.AvailableDays != nil {
		doctor.AvailableDays = req.AvailableDays
	}
	if req.Status != nil {
		doctor.Status = *req.Status
	}

	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityDoctor, doctor.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.doctorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityDoctor, id, converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	invalidateStats(ctx, u.log, u.statsCache)

	return nil
}

func (u *doctorUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
