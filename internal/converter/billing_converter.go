package converter

import (
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
)

func BillingTransactionToResponse(b *entity.BillingTransaction) *dto.BillingTransactionResponse {
	if b == nil {
		return nil
	}

	return &dto.BillingTransactionResponse{
		ID:            b.ID,
		InvoiceNumber: b.InvoiceNumber,
		PatientID:     b.PatientID,
		PatientName:   b.PatientName,
		Description:   b.Description,
		Date:          formatDate(b.Date),
		DueDate:       formatDate(b.DueDate),
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Balance:       b.Balance(),
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func MonthlyRevenueToResponse(m *entity.MonthlyRevenue) *dto.MonthlyRevenueResponse {
	return &dto.MonthlyRevenueResponse{
		Month:  m.Month,
		Name:   m.Name,
		Amount: m.Amount,
	}
}

func DashboardStatsToResponse(s *entity.DashboardStats) *dto.DashboardStatsResponse {
	if s == nil {
		return nil
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:     s.TotalPatients,
		TotalDoctors:      s.TotalDoctors,
		TotalAppointments: s.TotalAppointments,
		TodayAppointments: s.TodayAppointments,
	}
}
