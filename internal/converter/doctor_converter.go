package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(d *entity.Doctor) *dto.DoctorResponse {
	if d == nil {
		return nil
	}

	days := d.AvailableDays
	if days == nil {
		days = []string{}
	}

	return &dto.DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		Specialization: d.Specialization,
		Experience:     d.Experience,
		Qualifications: d.Qualifications,
		Phone:          d.Phone,
		Address:        d.Address,
		AvailableHours: d.AvailableHours,
		AvailableDays:  days,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
