package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	CrudRepository[entity.Medicine]
	// AdjustStock atomically adds delta to the stock and returns the updated
	// record, (nil, nil) when it does not exist, or ErrInsufficientStock.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Medicine, error)
}
