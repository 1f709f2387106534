package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the allow-list of issued tokens, keyed by jwt.TokenKey. A
// token is valid only while its key exists.
type TokenStore interface {
	Store(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	// Consume removes key and reports whether it was still valid. Only one
	// of several concurrent callers for the same key gets true.
	Consume(ctx context.Context, key string) (bool, error)
}

type redisTokenStore struct {
	redisClient *redis.Client
}

func NewRedisTokenStore(redisClient *redis.Client) TokenStore {
	return &redisTokenStore{redisClient: redisClient}
}

func (s *redisTokenStore) Store(ctx context.Context, key string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, key, "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.redisClient.Del(ctx, keys...).Err()
}

func (s *redisTokenStore) Consume(ctx context.Context, key string) (bool, error) {
	n, err := s.redisClient.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryTokenStore is used when Redis is disabled. Tokens do not survive a
// restart and are not shared between replicas.
type memoryTokenStore struct {
	mu        sync.Mutex
	expiry    map[string]time.Time
	now       func() time.Time
	nextSweep time.Time
}

// memorySweepInterval bounds how often Store scans for expired keys.
const memorySweepInterval = time.Minute

func NewMemoryTokenStore(now func() time.Time) TokenStore {
	if now == nil {
		now = time.Now
	}
	return &memoryTokenStore{
		expiry: make(map[string]time.Time),
		now:    now,
	}
}

func (s *memoryTokenStore) Store(ctx context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !now.Before(s.nextSweep) {
		for k, exp := range s.expiry {
			if !now.Before(exp) {
				delete(s.expiry, k)
			}
		}
		s.nextSweep = now.Add(memorySweepInterval)
	}

	s.expiry[key] = now.Add(ttl)
	return nil
}

func (s *memoryTokenStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expiry[key]
	if !ok {
		return false, nil
	}
	if !s.now().Before(exp) {
		delete(s.expiry, key)
		return false, nil
	}
	return true, nil
}

func (s *memoryTokenStore) Consume(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expiry[key]
	if !ok {
		return false, nil
	}
	delete(s.expiry, key)
	return s.now().Before(exp), nil
}

func (s *memoryTokenStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.expiry, key)
	}
	return nil
}
