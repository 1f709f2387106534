package repository

import "hospital-management/internal/domain/entity"

type LabReportRepository interface {
	CrudRepository[entity.LabReport]
}
