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
	ErrLabReportNotFound = errors.New("lab report not found")
)

type LabReportUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error)
	Recent(ctx context.Context, limit int) ([]dto.LabReportResponse, error)
	Stats(ctx context.Context) (*dto.LabReportStatsResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LabReportResponse, error)
	Create(ctx context.Context, req *dto.CreateLabReportRequest) (*dto.LabReportResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLabReportRequest) (*dto.LabReportResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.LabReportResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type labReportUsecase struct {
	log           *logrus.Logger
	labReportRepo repository.LabReportRepository
	participants  participants
	auditService  service.AuditService
	now           Clock
}

func NewLabReportUsecase(
	log *logrus.Logger,
	labReportRepo repository.LabReportRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
	now Clock,
) LabReportUsecase {
	return &labReportUsecase{
		log:           log,
		labReportRepo: labReportRepo,
		participants:  participants{patientRepo: patientRepo, doctorRepo: doctorRepo},
		auditService:  auditService,
		now:           now,
	}
}

func (u *labReportUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error) {
	reports, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	res := listquery.Evaluate(reports, q, entity.LabReportSchema)
	return converter.ToPage(res, converter.LabReportToResponse), nil
}

func (u *labReportUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error) {
	if _, err := u.participants.patient(ctx, patientID.String()); err != nil {
		return nil, err
	}
	return u.List(ctx, latestReportsFirst(q.WithFilter(entity.FilterPatientID, patientID.String())))
}

func (u *labReportUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID, q listquery.Query) (*dto.PageResponse[dto.LabReportResponse], error) {
	if _, err := u.participants.doctor(ctx, doctorID.String()); err != nil {
		return nil, err
	}
	return u.List(ctx, latestReportsFirst(q.WithFilter(entity.FilterDoctorID, doctorID.String())))
}

func latestReportsFirst(q listquery.Query) listquery.Query {
	if q.SortBy == "" {
		q.SortBy = entity.SortReportDate
		q.SortDesc = true
	}
	return q
}

func (u *labReportUsecase) Recent(ctx context.Context, limit int) ([]dto.LabReportResponse, error) {
	reports, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}
	return converter.ToSlice(firstN(reports, limit), converter.LabReportToResponse), nil
}

// Stats counts reports per status. Every known status is present.
func (u *labReportUsecase) Stats(ctx context.Context) (*dto.LabReportStatsResponse, error) {
	reports, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.LabReportStatsResponse{
		Total:    len(reports),
		ByStatus: make(map[string]int, len(entity.LabReportStatuses)),
	}
	for _, status := range entity.LabReportStatuses {
		stats.ByStatus[status] = 0
	}
	for _, r := range reports {
		stats.ByStatus[r.Status]++
	}

	return stats, nil
}

func (u *labReportUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.LabReportResponse, error) {
	report, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.LabReportToResponse(report), nil
}

func (u *labReportUsecase) Create(ctx context.Context, req *dto.CreateLabReportRequest) (*dto.LabReportResponse, error) {
	testDate, err := parseDate(req.TestDate)
	if err != nil {
		return nil, err
	}
	reportDate, err := parseOptionalDate(req.ReportDate)
	if err != nil {
		return nil, err
	}

	patient, doctor, err := u.participants.resolve(ctx, req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.LabReportStatusPending
	}

	report := &entity.LabReport{
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		TestType:     req.TestType,
		TestDate:     testDate,
		ReportDate:   reportDate,
		Results:      req.Results,
		NormalRanges: req.NormalRanges,
		Observations: req.Observations,
		Conclusion:   req.Conclusion,
		Status:       status,
	}
	u.stampReportDate(report)

	if err := u.labReportRepo.Create(ctx, report); err != nil {
		u.log.Warnf("Failed to create lab report: %+v", err)
		return nil, err
	}

	res := converter.LabReportToResponse(report)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityLabReport, report.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *labReportUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateLabReportRequest) (*dto.LabReportResponse, error) {
	report, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.LabReportToResponse(report)

	if req.TestDate != nil {
		testDate, err := parseDate(*req.TestDate)
		if err != nil {
			return nil, err
		}
		report.TestDate = testDate
	}
	if req.ReportDate != nil {
		reportDate, err := parseOptionalDate(*req.ReportDate)
		if err != nil {
			return nil, err
		}
		report.ReportDate = reportDate
	}
	if req.TestType != nil {
		report.TestType = *req.TestType
	}
	if req.Results != nil {
		report.Results = *req.Results
	}
	if req.NormalRanges != nil {
		report.NormalRanges = *req.NormalRanges
	}
	if req.Observations != nil {
		report.Observations = *req.Observations
	}
	if req.Conclusion != nil {
		report.Conclusion = *req.Conclusion
	}
	if req.Status != nil {
		report.Status = *req.Status
	}
	u.stampReportDate(report)

	return u.save(ctx, report, oldValue)
}

func (u *labReportUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.LabReportResponse, error) {
	if !entity.IsValidLabReportStatus(status) {
		return nil, ErrInvalidStatus
	}

	report, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.LabReportToResponse(report)

	report.Status = status
	u.stampReportDate(report)

	return u.save(ctx, report, oldValue)
}

// stampReportDate dates a completed report today unless a date was given.
func (u *labReportUsecase) stampReportDate(report *entity.LabReport) {
	if report.Status == entity.LabReportStatusCompleted && report.ReportDate == nil {
		day := today(u.now)
		report.ReportDate = &day
	}
}

func (u *labReportUsecase) save(ctx context.Context, report *entity.LabReport, oldValue *dto.LabReportResponse) (*dto.LabReportResponse, error) {
	if err := u.labReportRepo.Update(ctx, report); err != nil {
		u.log.Warnf("Failed to update lab report: %+v", err)
		return nil, err
	}

	newValue := converter.LabReportToResponse(report)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityLabReport, report.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

func (u *labReportUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.labReportRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete lab report: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityLabReport, id, converter.LabReportToResponse(report)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *labReportUsecase) findAll(ctx context.Context) ([]entity.LabReport, error) {
	reports, err := u.labReportRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find lab reports: %+v", err)
		return nil, err
	}
	return reports, nil
}

func (u *labReportUsecase) find(ctx context.Context, id uuid.UUID) (*entity.LabReport, error) {
	report, err := u.labReportRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab report by ID: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrLabReportNotFound
	}
	return report, nil
}
