package entity

import (
	"testing"
	"time"

	"hospital-management/pkg/listquery"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingTransaction_RefreshStatus(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		total string
		paid  string
		due   time.Time
		want  string
	}{
		{"fully paid", "100", "100", yesterday, BillingStatusPaid},
		{"overpaid counts as paid", "100", "120", tomorrow, BillingStatusPaid},
		{"partial before due", "100", "40", tomorrow, BillingStatusPartiallyPaid},
		{"nothing paid", "100", "0", tomorrow, BillingStatusUnpaid},
		{"due today is not overdue", "100", "0", StartOfDay(today), BillingStatusUnpaid},
		{"past due", "100", "40", yesterday, BillingStatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := BillingTransaction{
				TotalAmount: decimal.RequireFromString(tt.total),
				PaidAmount:  decimal.RequireFromString(tt.paid),
				DueDate:     tt.due,
			}
			assert.True(t, tx.RefreshStatus(today))
			assert.Equal(t, tt.want, tx.Status)
			assert.False(t, tx.RefreshStatus(today))
		})
	}
}

func TestBillingTransaction_RefreshStatusUsesCalendarDate(t *testing.T) {
	dueToday := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	eastern := time.FixedZone("EDT", -4*60*60)
	westOfUTC := time.Date(2024, 5, 10, 9, 0, 0, 0, eastern)
	lateEvening := time.Date(2024, 5, 10, 23, 30, 0, 0, eastern)
	eastOfUTC := time.Date(2024, 5, 10, 1, 0, 0, 0, time.FixedZone("JST", 9*60*60))

	for _, day := range []time.Time{westOfUTC, lateEvening, eastOfUTC} {
		tx := BillingTransaction{
			TotalAmount: decimal.RequireFromString("100"),
			PaidAmount:  decimal.Zero,
			DueDate:     dueToday,
		}
		tx.RefreshStatus(day)
		assert.Equal(t, BillingStatusUnpaid, tx.Status, day.String())
	}

	tx := BillingTransaction{TotalAmount: decimal.RequireFromString("100"), DueDate: dueToday}
	tx.RefreshStatus(time.Date(2024, 5, 11, 0, 30, 0, 0, eastern))
	assert.Equal(t, BillingStatusOverdue, tx.Status)
}

func TestStartOfDay(t *testing.T) {
	eastern := time.FixedZone("EDT", -4*60*60)

	got := StartOfDay(time.Date(2024, 5, 10, 23, 30, 0, 0, eastern))

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestInvoiceNumber(t *testing.T) {
	id := uuid.MustParse("abcdef12-3456-7890-abcd-ef1234567890")

	got := InvoiceNumber(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), id)

	assert.Equal(t, "INV-20240307-ABCDEF", got)
}

func TestMedicine_InventoryValueAndExpiry(t *testing.T) {
	day := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	m := Medicine{
		Price:      decimal.RequireFromString("2.50"),
		Stock:      4,
		ExpiryDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, decimal.NewFromInt(10).Equal(m.InventoryValue()))
	assert.False(t, m.IsExpired(day))
	assert.True(t, m.IsExpired(day.AddDate(0, 0, 1)))
}

func TestAdmission_Discharge(t *testing.T) {
	a := Admission{Status: AdmissionStatusActive}
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	a.Discharge(date, "stable", "recovered")

	assert.True(t, a.IsDischarged())
	require.NotNil(t, a.DischargeDate)
	assert.Equal(t, date, *a.DischargeDate)
	assert.Equal(t, "recovered", a.DischargeSummary)
}

func TestRoles(t *testing.T) {
	assert.Equal(t, RoleNurse, RoleName(RoleIDNurse))
	assert.Empty(t, RoleName(99))

	id, ok := RoleIDByName(RoleDoctor)
	assert.True(t, ok)
	assert.Equal(t, RoleIDDoctor, id)

	_, ok = RoleIDByName("patient")
	assert.False(t, ok)
}

func TestSchemas_CanonicalFilterValues(t *testing.T) {
	doctorID := uuid.New()
	appointments := []Appointment{
		{DoctorID: doctorID, Date: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), PatientName: "John Doe"},
		{DoctorID: uuid.New(), Date: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), PatientName: "Jane Roe"},
	}

	q := listquery.Query{Filters: map[string]string{
		FilterDoctorID: doctorID.String(),
		FilterDate:     "2024-04-02",
	}}
	res := listquery.Evaluate(appointments, q, AppointmentSchema)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "John Doe", res.Items[0].PatientName)

	medicines := []Medicine{{Name: "A", PrescriptionRequired: true}, {Name: "B"}}
	res2 := listquery.Evaluate(medicines, listquery.Query{Filters: map[string]string{FilterRequiresPrescription: "false"}}, MedicineSchema)
	require.Equal(t, 1, res2.Total)
	assert.Equal(t, "B", res2.Items[0].Name)

	staff := []Staff{{FirstName: "Ana", LastName: "Lima"}, {FirstName: "Bo", LastName: "Chen"}}
	res3 := listquery.Evaluate(staff, listquery.Query{Search: "ana lim"}, StaffSchema)
	require.Equal(t, 1, res3.Total)
	assert.Equal(t, "Ana", res3.Items[0].FirstName)
}
