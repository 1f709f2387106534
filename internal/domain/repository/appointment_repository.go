package repository

import "hospital-management/internal/domain/entity"

type AppointmentRepository interface {
	CrudRepository[entity.Appointment]
}
