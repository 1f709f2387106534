package repository

import (
	"context"
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingTransactionRepository interface {
	CrudRepository[entity.BillingTransaction]
	// ApplyPayment atomically adds amount to the paid amount, re-derives the
	// status as seen on day and returns the updated record. It returns
	// (nil, nil) when the transaction does not exist and
	// ErrPaymentExceedsBalance when amount is more than the balance.
	ApplyPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, day time.Time) (*entity.BillingTransaction, error)
}
