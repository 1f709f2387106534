package repository

import "hospital-management/internal/domain/entity"

type AdmissionRepository interface {
	CrudRepository[entity.Admission]
}
