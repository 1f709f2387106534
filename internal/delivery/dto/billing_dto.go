package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBillingTransactionRequest struct {
	InvoiceNumber string          `json:"invoice_number" validate:"omitempty,max=30"`
	PatientID     string          `json:"patient_id" validate:"required,uuid"`
	Description   string          `json:"description"`
	Date          string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	TotalAmount   decimal.Decimal `json:"total_amount" validate:"decimal_positive"`
	PaidAmount    decimal.Decimal `json:"paid_amount" validate:"decimal_non_negative"`
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"decimal_positive"`
}

// Response DTOs

type BillingTransactionResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	PatientID     uuid.UUID       `json:"patient_id"`
	PatientName   string          `json:"patient_name"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	DueDate       string          `json:"due_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type BillingSummary struct {
	TotalBilled  decimal.Decimal `json:"total_billed"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// BillingListResponse is a page of transactions plus totals over every
// matching transaction, not just the page.
type BillingListResponse struct {
	Page    *PageResponse[BillingTransactionResponse]
	Summary BillingSummary
}

type MonthlyRevenueResponse struct {
	Month  int             `json:"month"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type RevenueResponse struct {
	Year   int                      `json:"year"`
	Total  decimal.Decimal          `json:"total"`
	Months []MonthlyRevenueResponse `json:"months"`
}
