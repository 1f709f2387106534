package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct {
	crudRepository[entity.Medicine]
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{crudRepository[entity.Medicine]{db: db}}
}

// AdjustStock applies delta in a single conditional UPDATE so concurrent
// adjustments cannot drive stock negative.
func (r *medicineRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Medicine, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Medicine{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", delta),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	medicine, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, nil
	}
	if result.RowsAffected == 0 {
		return nil, domainRepo.ErrInsufficientStock
	}
	return medicine, nil
}
