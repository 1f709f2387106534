package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	LabReportStatusPending    = "pending"
	LabReportStatusInProgress = "in-progress"
	LabReportStatusCompleted  = "completed"
	LabReportStatusCancelled  = "cancelled"
)

// LabReportStatuses lists the statuses in workflow order.
var LabReportStatuses = []string{
	LabReportStatusPending,
	LabReportStatusInProgress,
	LabReportStatusCompleted,
	LabReportStatusCancelled,
}

type LabReport struct {
	Model
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName  string     `gorm:"type:varchar(255);not null" json:"patient_name"`
	DoctorID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName   string     `gorm:"type:varchar(255);not null" json:"doctor_name"`
	TestType     string     `gorm:"type:varchar(100);not null;index" json:"test_type"`
	TestDate     time.Time  `gorm:"type:date;not null" json:"test_date"`
	ReportDate   *time.Time `gorm:"type:date" json:"report_date,omitempty"`
	Results      string     `gorm:"type:text" json:"results"`
	NormalRanges string     `gorm:"type:text" json:"normal_ranges"`
	Observations string     `gorm:"type:text" json:"observations"`
	Conclusion   string     `gorm:"type:text" json:"conclusion"`
	Status       string     `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (LabReport) TableName() string {
	return "lab_reports"
}

// IsValidLabReportStatus reports whether s is a known lab report status.
func IsValidLabReportStatus(s string) bool {
	for _, status := range LabReportStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SortDate is the report date, falling back to the test date.
func (l *LabReport) SortDate() time.Time {
	if l.ReportDate != nil {
		return *l.ReportDate
	}
	return l.TestDate
}
