package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStaffRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,min=6,max=30"`
	Role       string `json:"role" validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
	Shift      string `json:"shift" validate:"omitempty,oneof=Morning Evening Night"`
	IsActive   *bool  `json:"is_active"`
	JoinDate   string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStaffRequest struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,min=6,max=30"`
	Role       *string `json:"role" validate:"omitempty,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Shift      *string `json:"shift" validate:"omitempty,oneof=Morning Evening Night"`
	IsActive   *bool   `json:"is_active"`
	JoinDate   *string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type StaffResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Shift      string    `json:"shift"`
	IsActive   bool      `json:"is_active"`
	JoinDate   string    `json:"join_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DepartmentSummary struct {
	Department string `json:"department"`
	Total      int    `json:"total"`
	Active     int    `json:"active"`
}
