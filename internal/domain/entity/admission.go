package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AdmissionStatusActive     = "Active"
	AdmissionStatusDischarged = "Discharged"
)

// Admission is an inpatient stay.
type Admission struct {
	Model
	PatientID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName        string     `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName         string     `gorm:"type:varchar(255);not null" json:"doctor_name"`
	RoomNumber         string     `gorm:"type:varchar(20);not null" json:"room_number"`
	WardType           string     `gorm:"type:varchar(50);not null;index" json:"ward_type"`
	AdmissionDate      time.Time  `gorm:"type:date;not null" json:"admission_date"`
	DischargeDate      *time.Time `gorm:"type:date" json:"discharge_date,omitempty"`
	ReasonForAdmission string     `gorm:"type:text" json:"reason_for_admission"`
	Diagnosis          string     `gorm:"type:text" json:"diagnosis"`
	TreatmentPlan      string     `gorm:"type:text" json:"treatment_plan"`
	Status             string     `gorm:"type:varchar(20);not null;index" json:"status"`
	Notes              string     `gorm:"type:text" json:"notes"`
	DischargeNotes     string     `gorm:"type:text" json:"discharge_notes"`
	DischargeSummary   string     `gorm:"type:text" json:"discharge_summary"`
}

func (Admission) TableName() string {
	return "admissions"
}

// IsDischarged checks if the patient has left
func (a *Admission) IsDischarged() bool {
	return a.Status == AdmissionStatusDischarged
}

// Discharge closes the stay on the given date.
func (a *Admission) Discharge(date time.Time, notes, summary string) {
	a.Status = AdmissionStatusDischarged
	a.DischargeDate = &date
	a.DischargeNotes = notes
	a.DischargeSummary = summary
}
