package service

import (
	"context"

	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuditService records who changed what. The acting user is taken from the
// request context when present.
type AuditService interface {
	LogCreate(ctx context.Context, entityName string, entityID uuid.UUID, newValue interface{}) error
	LogUpdate(ctx context.Context, entityName string, entityID uuid.UUID, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, entityName string, entityID uuid.UUID, oldValue interface{}) error
	LogAction(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID uuid.UUID) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, entityName string, entityID uuid.UUID, newValue interface{}) error {
	return s.record(ctx, actorFromContext(ctx), entity.AuditActionCreate, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, entityName string, entityID uuid.UUID, oldValue, newValue interface{}) error {
	return s.record(ctx, actorFromContext(ctx), entity.AuditActionUpdate, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, entityName string, entityID uuid.UUID, oldValue interface{}) error {
	return s.record(ctx, actorFromContext(ctx), entity.AuditActionDelete, entityName, entityID, oldValue, nil)
}

// LogAction logs an action without a before/after snapshot, such as login.
func (s *auditService) LogAction(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID uuid.UUID) error {
	return s.record(ctx, userID, action, entityName, entityID, nil, nil)
}

func (s *auditService) record(ctx context.Context, userID *uuid.UUID, action, entityName string, entityID uuid.UUID, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entityName,
		EntityID: entityID.String(),
		Metadata: entity.JSON{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
