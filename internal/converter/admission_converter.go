package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func AdmissionToResponse(a *entity.Admission) *dto.AdmissionResponse {
	if a == nil {
		return nil
	}

	return &dto.AdmissionResponse{
		ID:                 a.ID,
		PatientID:          a.PatientID,
		PatientName:        a.PatientName,
		DoctorID:           a.DoctorID,
		DoctorName:         a.DoctorName,
		RoomNumber:         a.RoomNumber,
		WardType:           a.WardType,
		AdmissionDate:      formatDate(a.AdmissionDate),
		DischargeDate:      formatOptionalDate(a.DischargeDate),
		ReasonForAdmission: a.ReasonForAdmission,
		Diagnosis:          a.Diagnosis,
		TreatmentPlan:      a.TreatmentPlan,
		Status:             a.Status,
		Notes:              a.Notes,
		DischargeNotes:     a.DischargeNotes,
		DischargeSummary:   a.DischargeSummary,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
