package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func StaffToResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:         s.ID,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		FullName:   s.FullName(),
		Email:      s.Email,
		Phone:      s.Phone,
		Role:       s.Role,
		Department: s.Department,
		Shift:      s.Shift,
		IsActive:   s.IsActive,
		JoinDate:   formatDate(s.JoinDate),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
