package repository

import (
	"context"
	"time"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type billingTransactionRepository struct {
	crudRepository[entity.BillingTransaction]
}

func NewBillingTransactionRepository(db *gorm.DB) domainRepo.BillingTransactionRepository {
	return &billingTransactionRepository{crudRepository[entity.BillingTransaction]{db: db}}
}

// paymentStatusExpr derives the status from the row as it was before the
// payment, mirroring entity.BillingTransaction.RefreshStatus.
const paymentStatusExpr = `CASE
	WHEN paid_amount + ? >= total_amount THEN ?
	WHEN due_date < ? THEN ?
	WHEN paid_amount + ? > 0 THEN ?
	ELSE ? END`

// ApplyPayment records the payment in a single conditional UPDATE so
// concurrent payments cannot exceed the invoice total.
func (r *billingTransactionRepository) ApplyPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, day time.Time) (*entity.BillingTransaction, error) {
	day = entity.StartOfDay(day)

	result := r.db.WithContext(ctx).
		Model(&entity.BillingTransaction{}).
		Where("id = ? AND paid_amount + ? <= total_amount", id, amount).
		Updates(map[string]interface{}{
			"paid_amount": gorm.Expr("paid_amount + ?", amount),
			"status": gorm.Expr(paymentStatusExpr,
				amount, entity.BillingStatusPaid,
				day, entity.BillingStatusOverdue,
				amount, entity.BillingStatusPartiallyPaid,
				entity.BillingStatusUnpaid),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	transaction, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, nil
	}
	if result.RowsAffected == 0 {
		return nil, domainRepo.ErrPaymentExceedsBalance
	}
	return transaction, nil
}
