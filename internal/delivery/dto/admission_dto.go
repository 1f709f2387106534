package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAdmissionRequest struct {
	PatientID          string `json:"patient_id" validate:"required,uuid"`
	DoctorID           string `json:"doctor_id" validate:"required,uuid"`
	RoomNumber         string `json:"room_number" validate:"required,max=20"`
	WardType           string `json:"ward_type" validate:"required,max=50"`
	AdmissionDate      string `json:"admission_date" validate:"required,datetime=2006-01-02"`
	ReasonForAdmission string `json:"reason_for_admission" validate:"required"`
	Diagnosis          string `json:"diagnosis"`
	TreatmentPlan      string `json:"treatment_plan"`
	Notes              string `json:"notes"`
}

type UpdateAdmissionRequest struct {
	RoomNumber         *string `json:"room_number" validate:"omitempty,max=20"`
	WardType           *string `json:"ward_type" validate:"omitempty,max=50"`
	AdmissionDate      *string `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
	ReasonForAdmission *string `json:"reason_for_admission"`
	Diagnosis          *string `json:"diagnosis"`
	TreatmentPlan      *string `json:"treatment_plan"`
	Notes              *string `json:"notes"`
}

// DischargeRequest closes an admission. DischargeDate defaults to today.
type DischargeRequest struct {
	DischargeDate    string `json:"discharge_date" validate:"omitempty,datetime=2006-01-02"`
	DischargeNotes   string `json:"discharge_notes"`
	DischargeSummary string `json:"discharge_summary"`
}

// Response DTOs

type AdmissionResponse struct {
	ID                 uuid.UUID `json:"id"`
	PatientID          uuid.UUID `json:"patient_id"`
	PatientName        string    `json:"patient_name"`
	DoctorID           uuid.UUID `json:"doctor_id"`
	DoctorName         string    `json:"doctor_name"`
	RoomNumber         string    `json:"room_number"`
	WardType           string    `json:"ward_type"`
	AdmissionDate      string    `json:"admission_date"`
	DischargeDate      *string   `json:"discharge_date"`
	ReasonForAdmission string    `json:"reason_for_admission"`
	Diagnosis          string    `json:"diagnosis"`
	TreatmentPlan      string    `json:"treatment_plan"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes"`
	DischargeNotes     string    `json:"discharge_notes"`
	DischargeSummary   string    `json:"discharge_summary"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
