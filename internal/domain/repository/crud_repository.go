package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInsufficientStock is returned when a stock adjustment would go below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrPaymentExceedsBalance is returned when a payment would push the paid
// amount above the invoice total.
var ErrPaymentExceedsBalance = errors.New("payment exceeds balance")

// CrudRepository is the storage contract shared by every entity. Find
// methods return (nil, nil) when the record does not exist. FindAll returns
// the full collection newest first, ties broken by id.
type CrudRepository[T any] interface {
	Create(ctx context.Context, model *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, model *T) error
	// Delete reports the number of removed rows.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
