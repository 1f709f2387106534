package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crudRepository implements domain CrudRepository on top of gorm.
type crudRepository[T any] struct {
	db *gorm.DB
}

func (r *crudRepository[T]) Create(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var model T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

func (r *crudRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var models []T
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}

func (r *crudRepository[T]) Update(ctx context.Context, model *T) error {
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}
