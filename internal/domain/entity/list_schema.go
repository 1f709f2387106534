package entity

import (
	"strconv"

	"hospital-management/pkg/listquery"
)

// Filter keys accepted on list endpoints.
const (
	FilterStatus               = "status"
	FilterGender               = "gender"
	FilterBloodGroup           = "bloodGroup"
	FilterSpecialization       = "specialization"
	FilterDoctorID             = "doctorId"
	FilterPatientID            = "patientId"
	FilterDate                 = "date"
	FilterType                 = "type"
	FilterWardType             = "wardType"
	FilterCategory             = "category"
	FilterRequiresPrescription = "requiresPrescription"
	FilterTestType             = "testType"
	FilterDepartment           = "department"
	FilterRole                 = "role"
	FilterIsActive             = "isActive"
	FilterAction               = "action"
	FilterEntity               = "entity"
	FilterUserID               = "userId"
)

// Sort keys shared by several schemas.
const (
	SortName       = "name"
	SortCreatedAt  = "createdAt"
	SortDate       = "date"
	SortReportDate = "reportDate"
)

var PatientSchema = listquery.Schema[Patient]{
	Searchable: []listquery.Field[Patient]{
		func(p Patient) string { return p.Name },
		func(p Patient) string { return p.Email },
		func(p Patient) string { return p.Phone },
	},
	Filterable: map[string]listquery.Field[Patient]{
		FilterGender:     func(p Patient) string { return p.Gender },
		FilterStatus:     func(p Patient) string { return p.Status },
		FilterBloodGroup: func(p Patient) string { return p.BloodGroup },
	},
	Sortable: map[string]func(a, b Patient) int{
		SortName:      func(a, b Patient) int { return listquery.CompareStrings(a.Name, b.Name) },
		SortCreatedAt: func(a, b Patient) int { return listquery.CompareTimes(a.CreatedAt, b.CreatedAt) },
	},
}

var DoctorSchema = listquery.Schema[Doctor]{
	Searchable: []listquery.Field[Doctor]{
		func(d Doctor) string { return d.Name },
		func(d Doctor) string { return d.Specialization },
		func(d Doctor) string { return d.Email },
	},
	Filterable: map[string]listquery.Field[Doctor]{
		FilterSpecialization: func(d Doctor) string { return d.Specialization },
		FilterStatus:         func(d Doctor) string { return d.Status },
	},
	Sortable: map[string]func(a, b Doctor) int{
		SortName:      func(a, b Doctor) int { return listquery.CompareStrings(a.Name, b.Name) },
		"experience":  func(a, b Doctor) int { return listquery.CompareInts(a.Experience, b.Experience) },
		SortCreatedAt: func(a, b Doctor) int { return listquery.CompareTimes(a.CreatedAt, b.CreatedAt) },
	},
}

var AppointmentSchema = listquery.Schema[Appointment]{
	Searchable: []listquery.Field[Appointment]{
		func(a Appointment) string { return a.PatientName },
		func(a Appointment) string { return a.DoctorName },
		func(a Appointment) string { return a.Type },
	},
	Filterable: map[string]listquery.Field[Appointment]{
		FilterStatus:    func(a Appointment) string { return a.Status },
		FilterDoctorID:  func(a Appointment) string { return listquery.ID(a.DoctorID) },
		FilterPatientID: func(a Appointment) string { return listquery.ID(a.PatientID) },
		FilterDate:      func(a Appointment) string { return listquery.Date(a.Date) },
		FilterType:      func(a Appointment) string { return a.Type },
	},
	Sortable: map[string]func(a, b Appointment) int{
		SortDate:      CompareAppointmentSlots,
		SortCreatedAt: func(a, b Appointment) int { return listquery.CompareTimes(a.CreatedAt, b.CreatedAt) },
	},
}

// CompareAppointmentSlots orders by date, then time of day.
func CompareAppointmentSlots(a, b Appointment) int {
	if c := listquery.CompareTimes(a.Date, b.Date); c != 0 {
		return c
	}
	return listquery.CompareStrings(a.Time, b.Time)
}

var AdmissionSchema = listquery.Schema[Admission]{
	Searchable: []listquery.Field[Admission]{
		func(a Admission) string { return a.PatientName },
		func(a Admission) string { return a.DoctorName },
		func(a Admission) string { return a.RoomNumber },
	},
	Filterable: map[string]listquery.Field[Admission]{
		FilterStatus:    func(a Admission) string { return a.Status },
		FilterPatientID: func(a Admission) string { return listquery.ID(a.PatientID) },
		FilterDoctorID:  func(a Admission) string { return listquery.ID(a.DoctorID) },
		FilterWardType:  func(a Admission) string { return a.WardType },
	},
	Sortable: map[string]func(a, b Admission) int{
		"admissionDate": func(a, b Admission) int { return listquery.CompareTimes(a.AdmissionDate, b.AdmissionDate) },
		SortCreatedAt:   func(a, b Admission) int { return listquery.CompareTimes(a.CreatedAt, b.CreatedAt) },
	},
}

var MedicineSchema = listquery.Schema[Medicine]{
	Searchable: []listquery.Field[Medicine]{
		func(m Medicine) string { return m.Name },
		func(m Medicine) string { return m.Manufacturer },
		func(m Medicine) string { return m.Category },
	},
	Filterable: map[string]listquery.Field[Medicine]{
		FilterCategory:             func(m Medicine) string { return m.Category },
		FilterRequiresPrescription: func(m Medicine) string { return strconv.FormatBool(m.PrescriptionRequired) },
	},
	Sortable: map[string]func(a, b Medicine) int{
		SortName:     func(a, b Medicine) int { return listquery.CompareStrings(a.Name, b.Name) },
		"price":      func(a, b Medicine) int { return listquery.CompareDecimals(a.Price, b.Price) },
		"stock":      func(a, b Medicine) int { return listquery.CompareInts(a.Stock, b.Stock) },
		"expiryDate": func(a, b Medicine) int { return listquery.CompareTimes(a.ExpiryDate, b.ExpiryDate) },
	},
}

var LabReportSchema = listquery.Schema[LabReport]{
	Searchable: []listquery.Field[LabReport]{
		func(l LabReport) string { return l.PatientName },
		func(l LabReport) string { return l.DoctorName },
		func(l LabReport) string { return l.TestType },
	},
	Filterable: map[string]listquery.Field[LabReport]{
		FilterStatus:    func(l LabReport) string { return l.Status },
		FilterTestType:  func(l LabReport) string { return l.TestType },
		FilterPatientID: func(l LabReport) string { return listquery.ID(l.PatientID) },
		FilterDoctorID:  func(l LabReport) string { return listquery.ID(l.DoctorID) },
	},
	Sortable: map[string]func(a, b LabReport) int{
		"testDate":     func(a, b LabReport) int { return listquery.CompareTimes(a.TestDate, b.TestDate) },
		SortReportDate: func(a, b LabReport) int { return listquery.CompareTimes(a.SortDate(), b.SortDate()) },
	},
}

var StaffSchema = listquery.Schema[Staff]{
	Searchable: []listquery.Field[Staff]{
		func(s Staff) string { return s.FullName() },
		func(s Staff) string { return s.Email },
	},
	Filterable: map[string]listquery.Field[Staff]{
		FilterDepartment: func(s Staff) string { return s.Department },
		FilterRole:       func(s Staff) string { return s.Role },
		FilterIsActive:   func(s Staff) string { return strconv.FormatBool(s.IsActive) },
	},
	Sortable: map[string]func(a, b Staff) int{
		SortName:   func(a, b Staff) int { return listquery.CompareStrings(a.FullName(), b.FullName()) },
		"joinDate": func(a, b Staff) int { return listquery.CompareTimes(a.JoinDate, b.JoinDate) },
	},
}

var BillingTransactionSchema = listquery.Schema[BillingTransaction]{
	Searchable: []listquery.Field[BillingTransaction]{
		func(b BillingTransaction) string { return b.PatientName },
		func(b BillingTransaction) string { return b.InvoiceNumber },
		func(b BillingTransaction) string { return b.Description },
	},
	Filterable: map[string]listquery.Field[BillingTransaction]{
		FilterStatus:    func(b BillingTransaction) string { return b.Status },
		FilterPatientID: func(b BillingTransaction) string { return listquery.ID(b.PatientID) },
	},
	Sortable: map[string]func(a, b BillingTransaction) int{
		SortDate: func(a, b BillingTransaction) int { return listquery.CompareTimes(a.Date, b.Date) },
		"totalAmount": func(a, b BillingTransaction) int {
			return listquery.CompareDecimals(a.TotalAmount, b.TotalAmount)
		},
	},
}

var AuditLogSchema = listquery.Schema[AuditLog]{
	Searchable: []listquery.Field[AuditLog]{
		func(l AuditLog) string { return l.Action },
		func(l AuditLog) string { return l.Entity },
		func(l AuditLog) string { return l.EntityID },
	},
	Filterable: map[string]listquery.Field[AuditLog]{
		FilterAction: func(l AuditLog) string { return l.Action },
		FilterEntity: func(l AuditLog) string { return l.Entity },
		FilterUserID: func(l AuditLog) string {
			if l.UserID == nil {
				return ""
			}
			return listquery.ID(*l.UserID)
		},
	},
}
