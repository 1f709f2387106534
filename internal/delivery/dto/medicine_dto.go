package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name                 string          `json:"name" validate:"required,min=2,max=255"`
	Description          string          `json:"description"`
	Category             string          `json:"category" validate:"required,max=100"`
	Manufacturer         string          `json:"manufacturer" validate:"max=255"`
	Price                decimal.Decimal `json:"price" validate:"decimal_positive"`
	Stock                int             `json:"stock" validate:"gte=0"`
	Dosage               string          `json:"dosage" validate:"max=100"`
	ExpiryDate           string          `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	SideEffects          string          `json:"side_effects"`
	PrescriptionRequired bool            `json:"prescription_required"`
}

// UpdateMedicineRequest changes catalogue data. Stock moves only through
// stock adjustments.
type UpdateMedicineRequest struct {
	Name                 *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description          *string          `json:"description"`
	Category             *string          `json:"category" validate:"omitempty,max=100"`
	Manufacturer         *string          `json:"manufacturer" validate:"omitempty,max=255"`
	Price                *decimal.Decimal `json:"price" validate:"omitempty,decimal_positive"`
	Dosage               *string          `json:"dosage" validate:"omitempty,max=100"`
	ExpiryDate           *string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	SideEffects          *string          `json:"side_effects"`
	PrescriptionRequired *bool            `json:"prescription_required"`
}

type AdjustStockRequest struct {
	StockDelta int `json:"stock_delta" validate:"ne=0"`
}

// Response DTOs

type MedicineResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Manufacturer         string          `json:"manufacturer"`
	Price                decimal.Decimal `json:"price"`
	Stock                int             `json:"stock"`
	Dosage               string          `json:"dosage"`
	ExpiryDate           string          `json:"expiry_date"`
	SideEffects          string          `json:"side_effects"`
	PrescriptionRequired bool            `json:"prescription_required"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type MedicineStatsResponse struct {
	TotalMedicines int             `json:"total_medicines"`
	LowStock       int             `json:"low_stock"`
	Expired        int             `json:"expired"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Categories     map[string]int  `json:"categories"`
}
