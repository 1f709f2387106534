package usecase

import (
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addMedicine(t *testing.T, name, category string, stock int, price, expiry string) *entity.Medicine {
	t.Helper()
	m := &entity.Medicine{Name: name, Category: category, Stock: stock, Price: money(price), ExpiryDate: date(expiry)}
	require.NoError(t, f.medicines.Create(f.ctx, m))
	return m
}

func TestMedicineUsecase_Create(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)

	res, err := uc.Create(f.ctx, &dto.CreateMedicineRequest{
		Name:       "Paracetamol",
		Category:   "Analgesic",
		Price:      money("2.50"),
		Stock:      40,
		ExpiryDate: "2025-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-01-31", res.ExpiryDate)
	assert.True(t, money("2.50").Equal(res.Price))
	assert.Equal(t, []string{"create:medicine"}, f.auditActions(t))

	_, err = uc.Create(f.ctx, &dto.CreateMedicineRequest{Name: "Bad", ExpiryDate: "31/01/2025"})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestMedicineUsecase_AdjustStock(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)
	m := f.addMedicine(t, "Ibuprofen", "Analgesic", 5, "1.00", "2025-01-01")

	res, err := uc.AdjustStock(f.ctx, m.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Stock)

	res, err = uc.AdjustStock(f.ctx, m.ID, -12)
	require.NoError(t, err)
	assert.Zero(t, res.Stock)

	_, err = uc.AdjustStock(f.ctx, m.ID, -1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = uc.AdjustStock(f.ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestMedicineUsecase_LowStockLowestFirst(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)
	f.addMedicine(t, "A", "X", 9, "1", "2025-01-01")
	f.addMedicine(t, "B", "X", 10, "1", "2025-01-01")
	f.addMedicine(t, "C", "X", 0, "1", "2025-01-01")
	f.addMedicine(t, "D", "X", 4, "1", "2025-01-01")

	low, err := uc.LowStock(f.ctx, 2)
	require.NoError(t, err)

	require.Len(t, low, 2)
	assert.Equal(t, "C", low[0].Name)
	assert.Equal(t, "D", low[1].Name)
}

func TestMedicineUsecase_Expiring(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)
	f.addMedicine(t, "expired", "X", 1, "1", "2024-05-09")
	f.addMedicine(t, "today", "X", 1, "1", "2024-05-10")
	f.addMedicine(t, "soon", "X", 1, "1", "2024-06-01")
	f.addMedicine(t, "later", "X", 1, "1", "2024-12-01")

	expiring, err := uc.Expiring(f.ctx, 30, 10)
	require.NoError(t, err)

	require.Len(t, expiring, 2)
	assert.Equal(t, "today", expiring[0].Name)
	assert.Equal(t, "soon", expiring[1].Name)
}

func TestMedicineUsecase_Stats(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)
	f.addMedicine(t, "A", "Analgesic", 20, "1.50", "2025-01-01")
	f.addMedicine(t, "B", "Analgesic", 2, "10.00", "2024-01-01")
	f.addMedicine(t, "C", "Antibiotic", 0, "99.99", "2025-01-01")

	stats, err := uc.Stats(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalMedicines)
	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 1, stats.Expired)
	assert.True(t, money("50").Equal(stats.InventoryValue), stats.InventoryValue.String())
	assert.Equal(t, map[string]int{"Analgesic": 2, "Antibiotic": 1}, stats.Categories)
}

func TestMedicineUsecase_ListByCategory(t *testing.T) {
	f := newFixture(t)
	uc := NewMedicineUsecase(f.log, f.medicines, f.audit, 10, f.clock)
	f.addMedicine(t, "Amoxicillin", "Antibiotic", 10, "3", "2025-01-01")
	f.addMedicine(t, "Aspirin", "Analgesic", 10, "1", "2025-01-01")
	f.addMedicine(t, "Azithromycin", "Antibiotic", 10, "5", "2025-01-01")

	page, err := uc.ListByCategory(f.ctx, "Antibiotic", listquery.Query{Page: 1, PageSize: 10, SortBy: entity.SortName})
	require.NoError(t, err)

	require.Equal(t, 2, page.Total)
	assert.Equal(t, "Amoxicillin", page.Items[0].Name)
	assert.Equal(t, "Azithromycin", page.Items[1].Name)
}

func TestStaffUsecase_CreateDefaults(t *testing.T) {
	f := newFixture(t)
	uc := NewStaffUsecase(f.log, f.staff, f.audit, f.clock)

	res, err := uc.Create(f.ctx, &dto.CreateStaffRequest{
		FirstName:  "Ana",
		LastName:   "Lee",
		Role:       "Nurse",
		Department: "Emergency",
	})
	require.NoError(t, err)

	assert.True(t, res.IsActive)
	assert.Equal(t, "2024-05-10", res.JoinDate)
	assert.Equal(t, "Ana Lee", res.FullName)

	inactive, err := uc.Create(f.ctx, &dto.CreateStaffRequest{
		FirstName:  "Bo",
		LastName:   "Kim",
		Role:       "Porter",
		Department: "Emergency",
		IsActive:   ptr(false),
		JoinDate:   "2020-02-01",
	})
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
	assert.Equal(t, "2020-02-01", inactive.JoinDate)
}

func TestStaffUsecase_Departments(t *testing.T) {
	f := newFixture(t)
	uc := NewStaffUsecase(f.log, f.staff, f.audit, f.clock)
	members := []entity.Staff{
		{FirstName: "A", Department: "Radiology", IsActive: true},
		{FirstName: "B", Department: "Emergency", IsActive: true},
		{FirstName: "C", Department: "Emergency", IsActive: false},
		{FirstName: "D", Department: "Emergency", IsActive: true},
	}
	for i := range members {
		require.NoError(t, f.staff.Create(f.ctx, &members[i]))
	}

	departments, err := uc.Departments(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, []dto.DepartmentSummary{
		{Department: "Emergency", Total: 3, Active: 2},
		{Department: "Radiology", Total: 1, Active: 1},
	}, departments)
}
