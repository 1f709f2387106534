package entity

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Patient is a registered patient record.
type Patient struct {
	Model
	Name           string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Email          string    `gorm:"type:varchar(255);index" json:"email"`
	Phone          string    `gorm:"type:varchar(30)" json:"phone"`
	Gender         string    `gorm:"type:varchar(20);index" json:"gender"`
	BloodGroup     string    `gorm:"type:varchar(5)" json:"blood_group"`
	Address        string    `gorm:"type:text" json:"address"`
	DateOfBirth    time.Time `gorm:"type:date" json:"date_of_birth"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history"`
	Status         string    `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (Patient) TableName() string {
	return "patients"
}
