package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is a pharmacy inventory item.
type Medicine struct {
	Model
	Name                 string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Description          string          `gorm:"type:text" json:"description"`
	Category             string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Manufacturer         string          `gorm:"type:varchar(255)" json:"manufacturer"`
	Price                decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock                int             `gorm:"not null" json:"stock"`
	Dosage               string          `gorm:"type:varchar(100)" json:"dosage"`
	ExpiryDate           time.Time       `gorm:"type:date;not null" json:"expiry_date"`
	SideEffects          string          `gorm:"type:text" json:"side_effects"`
	PrescriptionRequired bool            `gorm:"not null" json:"prescription_required"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// InventoryValue is price times units in stock.
func (m *Medicine) InventoryValue() decimal.Decimal {
	return m.Price.Mul(decimal.NewFromInt(int64(m.Stock)))
}

// IsExpired reports whether the medicine expired before day.
func (m *Medicine) IsExpired(day time.Time) bool {
	return StartOfDay(m.ExpiryDate).Before(StartOfDay(day))
}
