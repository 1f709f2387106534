package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func LabReportToResponse(l *entity.LabReport) *dto.LabReportResponse {
	if l == nil {
		return nil
	}

	return &dto.LabReportResponse{
		ID:           l.ID,
		PatientID:    l.PatientID,
		PatientName:  l.PatientName,
		DoctorID:     l.DoctorID,
		DoctorName:   l.DoctorName,
		TestType:     l.TestType,
		TestDate:     formatDate(l.TestDate),
		ReportDate:   formatOptionalDate(l.ReportDate),
		Results:      l.Results,
		NormalRanges: l.NormalRanges,
		Observations: l.Observations,
		Conclusion:   l.Conclusion,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
