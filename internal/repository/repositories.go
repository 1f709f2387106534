package repository

import (
	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	crudRepository[entity.Patient]
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{crudRepository[entity.Patient]{db: db}}
}

type doctorRepository struct {
	crudRepository[entity.Doctor]
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{crudRepository[entity.Doctor]{db: db}}
}

type appointmentRepository struct {
	crudRepository[entity.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{crudRepository[entity.Appointment]{db: db}}
}

type admissionRepository struct {
	crudRepository[entity.Admission]
}

func NewAdmissionRepository(db *gorm.DB) domainRepo.AdmissionRepository {
	return &admissionRepository{crudRepository[entity.Admission]{db: db}}
}

type labReportRepository struct {
	crudRepository[entity.LabReport]
}

func NewLabReportRepository(db *gorm.DB) domainRepo.LabReportRepository {
	return &labReportRepository{crudRepository[entity.LabReport]{db: db}}
}

type staffRepository struct {
	crudRepository[entity.Staff]
}

func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{crudRepository[entity.Staff]{db: db}}
}

type auditLogRepository struct {
	crudRepository[entity.AuditLog]
}

func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{crudRepository[entity.AuditLog]{db: db}}
}
