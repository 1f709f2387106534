package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no-show"
)

// Appointment books a patient with a doctor. Names are copied from the
// referenced records at creation so lists can be searched without joins.
type Appointment struct {
	Model
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName  string    `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Time        string    `gorm:"type:varchar(5);not null" json:"time"`
	Duration    int       `gorm:"not null" json:"duration"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Symptoms    string    `gorm:"type:text" json:"symptoms"`
	Notes       string    `gorm:"type:text" json:"notes"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsValidAppointmentStatus reports whether s is a known appointment status.
func IsValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}
