package usecase

import (
	"context"
	"errors"
	"slices"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type MedicineUsecase interface {
	List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.MedicineResponse], error)
	ListByCategory(ctx context.Context, category string, q listquery.Query) (*dto.PageResponse[dto.MedicineResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context, limit int) ([]dto.MedicineResponse, error)
	Expiring(ctx context.Context, days, limit int) ([]dto.MedicineResponse, error)
	Stats(ctx context.Context) (*dto.MedicineStatsResponse, error)
}

type medicineUsecase struct {
	log               *logrus.Logger
	medicineRepo      repository.MedicineRepository
	auditService      service.AuditService
	lowStockThreshold int
	now               Clock
}

func NewMedicineUsecase(
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	auditService service.AuditService,
	lowStockThreshold int,
	now Clock,
) MedicineUsecase {
	return &medicineUsecase{
		log:               log,
		medicineRepo:      medicineRepo,
		auditService:      auditService,
		lowStockThreshold: lowStockThreshold,
		now:               now,
	}
}

func (u *medicineUsecase) List(ctx context.Context, q listquery.Query) (*dto.PageResponse[dto.MedicineResponse], error) {
	medicines, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	res := listquery.Evaluate(medicines, q, entity.MedicineSchema)
	return converter.ToPage(res, converter.MedicineToResponse), nil
}

func (u *medicineUsecase) ListByCategory(ctx context.Context, category string, q listquery.Query) (*dto.PageResponse[dto.MedicineResponse], error) {
	return u.List(ctx, q.WithFilter(entity.FilterCategory, category))
}

func (u *medicineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Manufacturer:         req.Manufacturer,
		Price:                req.Price,
		Stock:                req.Stock,
		Dosage:               req.Dosage,
		ExpiryDate:           expiry,
		SideEffects:          req.SideEffects,
		PrescriptionRequired: req.PrescriptionRequired,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	res := converter.MedicineToResponse(medicine)
	if err := u.auditService.LogCreate(ctx, entity.AuditEntityMedicine, medicine.ID, res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *medicineUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.MedicineToResponse(medicine)

	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		medicine.ExpiryDate = expiry
	}
	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Category != nil {
		medicine.Category = *req.Category
	}
	if req.Manufacturer != nil {
		medicine.Manufacturer = *req.Manufacturer
	}
	if req.Price != nil {
		medicine.Price = *req.Price
	}
	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}
	if req.SideEffects != nil {
		medicine.SideEffects = *req.SideEffects
	}
	if req.PrescriptionRequired != nil {
		medicine.PrescriptionRequired = *req.PrescriptionRequired
	}

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	newValue := converter.MedicineToResponse(medicine)
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityMedicine, medicine.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// AdjustStock adds delta (negative to dispense) to the stock in one atomic step.
func (u *medicineUsecase) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		u.log.Warnf("Failed to adjust medicine stock: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	res := converter.MedicineToResponse(medicine)
	oldValue := map[string]int{"stock": medicine.Stock - delta}
	newValue := map[string]int{"stock": medicine.Stock, "stock_delta": delta}
	if err := u.auditService.LogUpdate(ctx, entity.AuditEntityMedicine, medicine.ID, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	medicine, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if _, err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, entity.AuditEntityMedicine, id, converter.MedicineToResponse(medicine)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// LowStock returns medicines under the threshold, lowest stock first.
func (u *medicineUsecase) LowStock(ctx context.Context, limit int) ([]dto.MedicineResponse, error) {
	medicines, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	low := slices.DeleteFunc(medicines, func(m entity.Medicine) bool {
		return m.Stock >= u.lowStockThreshold
	})
	slices.SortStableFunc(low, func(a, b entity.Medicine) int {
		return listquery.CompareInts(a.Stock, b.Stock)
	})

	return converter.ToSlice(firstN(low, limit), converter.MedicineToResponse), nil
}

// Expiring returns medicines that are still valid today but expire within
// the given number of days, soonest first.
func (u *medicineUsecase) Expiring(ctx context.Context, days, limit int) ([]dto.MedicineResponse, error) {
	medicines, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	day := today(u.now)
	horizon := day.AddDate(0, 0, days)
	expiring := slices.DeleteFunc(medicines, func(m entity.Medicine) bool {
		return m.IsExpired(day) || m.ExpiryDate.After(horizon)
	})
	slices.SortStableFunc(expiring, func(a, b entity.Medicine) int {
		return listquery.CompareTimes(a.ExpiryDate, b.ExpiryDate)
	})

	return converter.ToSlice(firstN(expiring, limit), converter.MedicineToResponse), nil
}

func (u *medicineUsecase) Stats(ctx context.Context) (*dto.MedicineStatsResponse, error) {
	medicines, err := u.findAll(ctx)
	if err != nil {
		return nil, err
	}

	day := today(u.now)
	stats := &dto.MedicineStatsResponse{
		TotalMedicines: len(medicines),
		InventoryValue: decimal.Zero,
		Categories:     make(map[string]int),
	}
	for _, m := range medicines {
		if m.Stock < u.lowStockThreshold {
			stats.LowStock++
		}
		if m.IsExpired(day) {
			stats.Expired++
		}
		stats.InventoryValue = stats.InventoryValue.Add(m.InventoryValue())
		stats.Categories[m.Category]++
	}

	return stats, nil
}

func (u *medicineUsecase) findAll(ctx context.Context) ([]entity.Medicine, error) {
	medicines, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}
	return medicines, nil
}

func (u *medicineUsecase) find(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine by ID: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return medicine, nil
}
