package repository

import "hospital-management/internal/domain/entity"

type DoctorRepository interface {
	CrudRepository[entity.Doctor]
}
