package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Duration  int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Type      string `json:"type" validate:"required,max=50"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Symptoms  string `json:"symptoms"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID *string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID  *string `json:"doctor_id" validate:"omitempty,uuid"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time" validate:"omitempty,datetime=15:04"`
	Duration  *int    `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Type      *string `json:"type" validate:"omitempty,max=50"`
	Status    *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Symptoms  *string `json:"symptoms"`
	Notes     *string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled no-show"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Symptoms    string    `json:"symptoms"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
