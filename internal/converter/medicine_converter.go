package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func MedicineToResponse(m *entity.Medicine) *dto.MedicineResponse {
	if m == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		Category:             m.Category,
		Manufacturer:         m.Manufacturer,
		Price:                m.Price,
		Stock:                m.Stock,
		Dosage:               m.Dosage,
		ExpiryDate:           formatDate(m.ExpiryDate),
		SideEffects:          m.SideEffects,
		PrescriptionRequired: m.PrescriptionRequired,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
