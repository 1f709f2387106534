package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BillingStatusPaid          = "Paid"
	BillingStatusPartiallyPaid = "Partially Paid"
	BillingStatusUnpaid        = "Unpaid"
	BillingStatusOverdue       = "Overdue"
)

// BillingTransaction is an invoice issued to a patient.
type BillingTransaction struct {
	Model
	InvoiceNumber string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"invoice_number"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName   string          `gorm:"type:varchar(255);not null" json:"patient_name"`
	Description   string          `gorm:"type:text" json:"description"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"due_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"paid_amount"`
	Status        string          `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (BillingTransaction) TableName() string {
	return "billing_transactions"
}

// Balance is the amount still owed.
func (b *BillingTransaction) Balance() decimal.Decimal {
	return b.TotalAmount.Sub(b.PaidAmount)
}

// RefreshStatus derives Status from the amounts and the due date as seen on
// the calendar date of day. An invoice is overdue from the day after its due
// date. It reports whether the status changed.
func (b *BillingTransaction) RefreshStatus(day time.Time) bool {
	var status string
	switch {
	case b.PaidAmount.GreaterThanOrEqual(b.TotalAmount):
		status = BillingStatusPaid
	case StartOfDay(b.DueDate).Before(StartOfDay(day)):
		status = BillingStatusOverdue
	case b.PaidAmount.IsPositive():
		status = BillingStatusPartiallyPaid
	default:
		status = BillingStatusUnpaid
	}

	changed := status != b.Status
	b.Status = status
	return changed
}

// InvoiceNumber formats an invoice number as INV-YYYYMMDD-XXXXXX, taking the
// suffix from the first six hex digits of id.
func InvoiceNumber(date time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", date.Format("20060102"), suffix)
}
