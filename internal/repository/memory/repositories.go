package memory

import (
	"context"
	"strings"
	"time"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func NewPatientRepository(opts ...Option) domainRepo.PatientRepository {
	return NewStore[entity.Patient](opts...)
}

func NewDoctorRepository(opts ...Option) domainRepo.DoctorRepository {
	return NewStore[entity.Doctor](opts...)
}

func NewAppointmentRepository(opts ...Option) domainRepo.AppointmentRepository {
	return NewStore[entity.Appointment](opts...)
}

func NewAdmissionRepository(opts ...Option) domainRepo.AdmissionRepository {
	return NewStore[entity.Admission](opts...)
}

func NewLabReportRepository(opts ...Option) domainRepo.LabReportRepository {
	return NewStore[entity.LabReport](opts...)
}

func NewStaffRepository(opts ...Option) domainRepo.StaffRepository {
	return NewStore[entity.Staff](opts...)
}

type billingTransactionRepository struct {
	*Store[entity.BillingTransaction, *entity.BillingTransaction]
}

func NewBillingTransactionRepository(opts ...Option) domainRepo.BillingTransactionRepository {
	return &billingTransactionRepository{NewStore[entity.BillingTransaction](opts...)}
}

func (r *billingTransactionRepository) ApplyPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, day time.Time) (*entity.BillingTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.update(id, func(t *entity.BillingTransaction) error {
		if amount.GreaterThan(t.Balance()) {
			return domainRepo.ErrPaymentExceedsBalance
		}
		t.PaidAmount = t.PaidAmount.Add(amount)
		t.RefreshStatus(day)
		return nil
	})
}

func NewAuditLogRepository(opts ...Option) domainRepo.AuditLogRepository {
	return NewStore[entity.AuditLog](opts...)
}

type userRepository struct {
	*Store[entity.User, *entity.User]
}

func NewUserRepository(opts ...Option) domainRepo.UserRepository {
	return &userRepository{NewStore[entity.User](opts...)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

type medicineRepository struct {
	*Store[entity.Medicine, *entity.Medicine]
}

func NewMedicineRepository(opts ...Option) domainRepo.MedicineRepository {
	return &medicineRepository{NewStore[entity.Medicine](opts...)}
}

func (r *medicineRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Medicine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.update(id, func(m *entity.Medicine) error {
		if m.Stock+delta < 0 {
			return domainRepo.ErrInsufficientStock
		}
		m.Stock += delta
		return nil
	})
}
