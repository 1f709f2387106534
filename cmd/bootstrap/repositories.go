package bootstrap

import (
	domainRepo "hospital-management/internal/domain/repository"
	"hospital-management/internal/repository"
	"hospital-management/internal/repository/memory"

	"gorm.io/gorm"
)

// Repositories is the storage backing every usecase.
type Repositories struct {
	Users        domainRepo.UserRepository
	Patients     domainRepo.PatientRepository
	Doctors      domainRepo.DoctorRepository
	Appointments domainRepo.AppointmentRepository
	Admissions   domainRepo.AdmissionRepository
	Medicines    domainRepo.MedicineRepository
	LabReports   domainRepo.LabReportRepository
	Staff        domainRepo.StaffRepository
	Billing      domainRepo.BillingTransactionRepository
	AuditLogs    domainRepo.AuditLogRepository
}

func newPostgresRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:        repository.NewUserRepository(db),
		Patients:     repository.NewPatientRepository(db),
		Doctors:      repository.NewDoctorRepository(db),
		Appointments: repository.NewAppointmentRepository(db),
		Admissions:   repository.NewAdmissionRepository(db),
		Medicines:    repository.NewMedicineRepository(db),
		LabReports:   repository.NewLabReportRepository(db),
		Staff:        repository.NewStaffRepository(db),
		Billing:      repository.NewBillingTransactionRepository(db),
		AuditLogs:    repository.NewAuditLogRepository(db),
	}
}

// newMemoryRepositories keeps everything in process. Data is lost on restart.
func newMemoryRepositories() Repositories {
	return Repositories{
		Users:        memory.NewUserRepository(),
		Patients:     memory.NewPatientRepository(),
		Doctors:      memory.NewDoctorRepository(),
		Appointments: memory.NewAppointmentRepository(),
		Admissions:   memory.NewAdmissionRepository(),
		Medicines:    memory.NewMedicineRepository(),
		LabReports:   memory.NewLabReportRepository(),
		Staff:        memory.NewStaffRepository(),
		Billing:      memory.NewBillingTransactionRepository(),
		AuditLogs:    memory.NewAuditLogRepository(),
	}
}
