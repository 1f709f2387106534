package repository

import "hospital-management/internal/domain/entity"

type AuditLogRepository interface {
	CrudRepository[entity.AuditLog]
}
