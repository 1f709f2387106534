package entity

import "github.com/shopspring/decimal"

// DashboardStats are the headline counters shown on the dashboard.
type DashboardStats struct {
	TotalPatients     int `json:"total_patients"`
	TotalDoctors      int `json:"total_doctors"`
	TotalAppointments int `json:"total_appointments"`
	TodayAppointments int `json:"today_appointments"`
}

// MonthlyRevenue is the amount collected in one calendar month.
type MonthlyRevenue struct {
	Month  int             `json:"month"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
