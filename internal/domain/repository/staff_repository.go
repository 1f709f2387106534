package repository

import "hospital-management/internal/domain/entity"

type StaffRepository interface {
	CrudRepository[entity.Staff]
}
