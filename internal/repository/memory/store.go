// Package memory provides in-process repositories. They back the "memory"
// storage driver and serve as fixtures in tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

type options struct {
	now   func() time.Time
	newID func() uuid.UUID
}

type Option func(*options)

// WithClock sets the clock used to stamp created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator sets the generator for primary keys.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(o *options) { o.newID = newID }
}

// Store is a goroutine-safe table of T keyed by id.
type Store[T any, P interface {
	*T
	entity.Identifiable
}] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	opts  options
}

func NewStore[T any, P interface {
	*T
	entity.Identifiable
}](opts ...Option) *Store[T, P] {
	o := options{now: time.Now, newID: uuid.New}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, P]{
		items: make(map[uuid.UUID]T),
		opts:  o,
	}
}

func (s *Store[T, P]) Create(ctx context.Context, model *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := P(model)
	if p.GetID() == uuid.Nil {
		p.SetID(s.opts.newID())
	}
	p.Touch(s.opts.now())
	s.items[p.GetID()] = *model
	return nil
}

func (s *Store[T, P]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store[T, P]) FindAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b T) int {
		pa, pb := P(&a), P(&b)
		if c := pb.GetCreatedAt().Compare(pa.GetCreatedAt()); c != 0 {
			return c
		}
		ida, idb := pa.GetID(), pb.GetID()
		return slices.Compare(ida[:], idb[:])
	})
	return out, nil
}

// Update replaces the stored record. Updating a missing record is a no-op,
// matching gorm's Save on a row that was deleted concurrently.
func (s *Store[T, P]) Update(ctx context.Context, model *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := P(model)
	if _, ok := s.items[p.GetID()]; !ok {
		return nil
	}
	p.Touch(s.opts.now())
	s.items[p.GetID()] = *model
	return nil
}

func (s *Store[T, P]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return 0, nil
	}
	delete(s.items, id)
	return 1, nil
}

// update applies fn to a stored record under the write lock.
func (s *Store[T, P]) update(id uuid.UUID, fn func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	if err := fn(&item); err != nil {
		return nil, err
	}
	P(&item).Touch(s.opts.now())
	s.items[id] = item
	return &item, nil
}

// find returns the first record satisfying match.
func (s *Store[T, P]) find(match func(*T) bool) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if match(&item) {
			found := item
			return &found
		}
	}
	return nil
}
