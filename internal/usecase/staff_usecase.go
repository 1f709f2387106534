package usecase

import (
	"context"
	"errors"
	"sort"

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
	ErrStaffNotFound = errors.New("staff member not found")
)

type StaffUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.StaffResponse], error)
	Departments(ctx context.Context) ([]dto.DepartmentSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error)
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffUsecase struct {
	log          *logrus.Logger
	staffRepo    repository.StaffRepository
	auditService service.AuditService
	now          Clock
}

func NewStaffUsecase(
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	auditService service.AuditService,
	now Clock,
) StaffUsecase {
	return &staffUsecase{
		log:          log,
		staffRepo:    staffRepo,
		auditService: auditService,
		now:          now,
	}
}

func (u *staffUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.StaffResponse], error) {
	staff, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	res := listquery.Evaluate(staff, q, entity.StaffSchema)
	return converter.ToPage(res, converter.StaffToResponse), nil
}

// Departments summarizes head counts per department, sorted by name.
func (u *staffUsecase) Departments(ctx context.Context) ([]dto.DepartmentSummary, error) {
	staff, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*dto.DepartmentSummary)
	for _, s := range staff {
		summary, ok := byName[s.Department]
		if !ok {
			summary = &dto.DepartmentSummary{Department: s.Department}
			byName[s.Department] = summary
		}
		summary.Total++
		if s.IsActive {
			summary.Active++
		}
	}

	out := make([]dto.DepartmentSummary, 0, len(byName))
	for _, summary := range byName {
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })

	return out, nil
}

func (u *staffUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error) {
	member, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.StaffToResponse(member), nil
}

func (u *staffUsecase) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	joinDate := today(u.now)
	if req.JoinDate != "" {
		var err error
		if joinDate, err = parseDate(req.JoinDate); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	member := &entity.Staff{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		Shift:      req.Shift,
		IsActive:   isActive,
		JoinDate:   joinDate,
	}

	if err := u.staffRepo.Create(ctx, member); err != nil {
		u.log.Warnf("Failed to create staff member: %+v", err)
		return nil, err
	}

	res := converter.StaffToResponse(member)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityStaff, member.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *staffUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	member, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.StaffToResponse(member)

	if req.JoinDate != nil {
		joinDate, err := parseDate(*req.JoinDate)
		if err != nil {
			return nil, err
		}
		member.JoinDate = joinDate
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.Shift != nil {
		member.Shift = *req.Shift
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := u.staffRepo.Update(ctx, member); err != nil {
		u.log.Warnf("Failed to update staff member: %+v", err)
		return nil, err
	}

	newValue := converter.StaffToResponse(member)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityStaff, member.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *staffUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.staffRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete staff member: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityStaff, id, converter.StaffToResponse(member)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *staffUsecase) findAll(ctx context.Context) ([]entity.Staff, error) {
	staff, err := u.staffRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	return staff, nil
}

func (u *staffUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	member, err := u.staffRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff member by ID: %+v", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}
	return member, nil
}
