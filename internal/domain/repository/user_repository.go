package repository

import (
	"context"

	"hospital-management/internal/domain/entity"
)

type UserRepository interface {
	CrudRepository[entity.User]
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
