package service

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(func() time.Time { return now })

	require.NoError(t, store.Store(ctx, "a", time.Minute))
	require.NoError(t, store.Store(ctx, "b", time.Minute))

	ok, err := store.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "a"))
	ok, _ = store.Exists(ctx, "a")
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = store.Exists(ctx, "b")
	assert.False(t, ok, "expired")
}

func TestMemoryTokenStore_Consume(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryTokenStore(func() time.Time { return now })

	require.NoError(t, store.Store(ctx, "refresh", time.Minute))
	require.NoError(t, store.Store(ctx, "stale", time.Second))

	ok, err := store.Consume(ctx, "refresh")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "refresh")
	require.NoError(t, err)
	assert.False(t, ok, "already consumed")

	ok, _ = store.Exists(ctx, "refresh")
	assert.False(t, ok)

	now = now.Add(time.Second)
	ok, err = store.Consume(ctx, "stale")
	require.NoError(t, err)
	assert.False(t, ok, "expired")

	ok, _ = store.Consume(ctx, "never-issued")
	assert.False(t, ok)
}

func TestMemoryTokenStore_PrunesExpiredOnStore(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	store := NewMemoryTokenStore(func() time.Time { return now })
	expiry := store.(*memoryTokenStore).expiry

	require.NoError(t, store.Store(ctx, "access-1", time.Second))
	require.NoError(t, store.Store(ctx, "refresh-1", time.Hour))

	now = start.Add(30 * time.Second)
	require.NoError(t, store.Store(ctx, "access-2", time.Second))
	assert.Len(t, expiry, 3, "sweep runs at most once per interval")

	now = start.Add(2 * time.Minute)
	require.NoError(t, store.Store(ctx, "access-3", time.Minute))
	assert.Len(t, expiry, 2)
	assert.Contains(t, expiry, "refresh-1")
	assert.Contains(t, expiry, "access-3")
}

func TestAuditService_RecordsActorFromContext(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	svc := NewAuditService(quietLogger(), repo)

	actor := uuid.New()
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, actor)
	patientID := uuid.New()

	require.NoError(t, svc.LogUpdate(ctx, entity.AuditEntityPatient, patientID, map[string]string{"name": "old"}, map[string]string{"name": "new"}))

	logs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionUpdate, logs[0].Action)
	assert.Equal(t, entity.AuditEntityPatient, logs[0].Entity)
	assert.Equal(t, patientID.String(), logs[0].EntityID)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, actor, *logs[0].UserID)
	assert.Equal(t, map[string]string{"name": "old"}, logs[0].Metadata["old_value"])
}

func TestAuditService_AnonymousAction(t *testing.T) {
	repo := memory.NewAuditLogRepository()
	svc := NewAuditService(quietLogger(), repo)

	require.NoError(t, svc.LogCreate(context.Background(), entity.AuditEntityDoctor, uuid.New(), nil))

	logs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].UserID)
	assert.Equal(t, entity.AuditActionCreate, logs[0].Action)
}

func TestNoopStatsCache(t *testing.T) {
	ctx := context.Background()
	cache := NewNoopStatsCache()

	require.NoError(t, cache.Set(ctx, &entity.DashboardStats{TotalPatients: 3}))
	stats, ok, err := cache.Get(ctx)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, stats)
	assert.NoError(t, cache.Invalidate(ctx))
}
