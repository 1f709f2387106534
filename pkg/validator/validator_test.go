package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string           `json:"email" validate:"required,email"`
	Status string           `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Date   string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount decimal.Decimal  `json:"amount" validate:"decimal_positive"`
	Price  *decimal.Decimal `json:"price" validate:"omitempty,decimal_non_negative"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	price := decimal.Zero

	err := v.Validate(&sample{
		Email:  "a@b.co",
		Status: "Active",
		Date:   "2024-02-29",
		Amount: decimal.RequireFromString("0.01"),
		Price:  &price,
	})

	assert.NoError(t, err)
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()
	price := decimal.NewFromInt(-1)

	err := v.Validate(&sample{
		Status: "Unknown",
		Date:   "02/29/2024",
		Amount: decimal.Zero,
		Price:  &price,
	})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "email is required", errs["email"])
	assert.Equal(t, "status must be one of: Active Inactive", errs["status"])
	assert.Equal(t, "date must match the format 2006-01-02", errs["date"])
	assert.Equal(t, "amount must be a positive amount", errs["amount"])
	assert.Equal(t, "price must not be negative", errs["price"])
}
