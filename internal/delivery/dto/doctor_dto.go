package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=255"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Specialization string   `json:"specialization" validate:"required,max=100"`
	Experience     int      `json:"experience" validate:"gte=0,lte=80"`
	Qualifications string   `json:"qualifications"`
	Phone          string   `json:"phone" validate:"omitempty,min=6,max=30"`
	Address        string   `json:"address"`
	AvailableHours string   `json:"available_hours" validate:"max=50"`
	AvailableDays  []string `json:"available_days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Status         string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateDoctorRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Specialization *string  `json:"specialization" validate:"omitempty,max=100"`
	Experience     *int     `json:"experience" validate:"omitempty,gte=0,lte=80"`
	Qualifications *string  `json:"qualifications"`
	Phone          *string  `json:"phone" validate:"omitempty,min=6,max=30"`
	Address        *string  `json:"address"`
	AvailableHours *string  `json:"available_hours" validate:"omitempty,max=50"`
	AvailableDays  []string `json:"available_days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Status         *string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	Qualifications string    `json:"qualifications"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	AvailableHours string    `json:"available_hours"`
	AvailableDays  []string  `json:"available_days"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
