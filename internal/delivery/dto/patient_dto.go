package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,min=6,max=30"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	BloodGroup     string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	MedicalHistory string `json:"medical_history"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdatePatientRequest only changes the fields that are present.
type UpdatePatientRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,min=6,max=30"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	BloodGroup     *string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address        *string `json:"address"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	MedicalHistory *string `json:"medical_history"`
	Status         *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// Response DTOs

type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Gender         string    `json:"gender"`
	BloodGroup     string    `json:"blood_group"`
	Address        string    `json:"address"`
	DateOfBirth    string    `json:"date_of_birth"`
	MedicalHistory string    `json:"medical_history"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
