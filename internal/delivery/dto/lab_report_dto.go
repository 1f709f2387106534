package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLabReportRequest struct {
	PatientID    string `json:"patient_id" validate:"required,uuid"`
	DoctorID     string `json:"doctor_id" validate:"required,uuid"`
	TestType     string `json:"test_type" validate:"required,max=100"`
	TestDate     string `json:"test_date" validate:"required,datetime=2006-01-02"`
	ReportDate   string `json:"report_date" validate:"omitempty,datetime=2006-01-02"`
	Results      string `json:"results"`
	NormalRanges string `json:"normal_ranges"`
	Observations string `json:"observations"`
	Conclusion   string `json:"conclusion"`
	Status       string `json:"status" validate:"omitempty,oneof=pending in-progress completed cancelled"`
}

type UpdateLabReportRequest struct {
	TestType     *string `json:"test_type" validate:"omitempty,max=100"`
	TestDate     *string `json:"test_date" validate:"omitempty,datetime=2006-01-02"`
	ReportDate   *string `json:"report_date" validate:"omitempty,datetime=2006-01-02"`
	Results      *string `json:"results"`
	NormalRanges *string `json:"normal_ranges"`
	Observations *string `json:"observations"`
	Conclusion   *string `json:"conclusion"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending in-progress completed cancelled"`
}

type UpdateLabReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed cancelled"`
}

// Response DTOs

type LabReportResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	TestType     string    `json:"test_type"`
	TestDate     string    `json:"test_date"`
	ReportDate   *string   `json:"report_date"`
	Results      string    `json:"results"`
	NormalRanges string    `json:"normal_ranges"`
	Observations string    `json:"observations"`
	Conclusion   string    `json:"conclusion"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LabReportStatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}
