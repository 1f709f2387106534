package usecase

import (
	"testing"

	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogUsecase_ListFilters(t *testing.T) {
	f := newFixture(t)
	uc := NewAuditLogUsecase(f.log, f.auditLogs)

	require.NoError(t, f.audit.LogCreate(f.ctx, entity.AuditEntityPatient, uuid.New(), nil))
	require.NoError(t, f.audit.LogDelete(f.ctx, entity.AuditEntityPatient, uuid.New(), nil))
	require.NoError(t, f.audit.LogCreate(f.ctx, entity.AuditEntityDoctor, uuid.New(), nil))

	page, err := uc.List(f.ctx, listquery.Query{Page: 1, PageSize: 10, Filters: map[string]string{entity.FilterEntity: entity.AuditEntityPatient}})
	require.NoError(t, err)

	require.Equal(t, 2, page.Total)
	assert.Equal(t, entity.AuditActionDelete, page.Items[0].Action)

	found, err := uc.GetByID(f.ctx, page.Items[1].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditActionCreate, found.Action)

	_, err = uc.GetByID(f.ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
