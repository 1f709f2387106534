package repository

import "hospital-management/internal/domain/entity"

type PatientRepository interface {
	CrudRepository[entity.Patient]
}
