package entity

import "time"

// Staff is a non-physician employee.
type Staff struct {
	Model
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email      string    `gorm:"type:varchar(255);index" json:"email"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone"`
	Role       string    `gorm:"type:varchar(100);not null;index" json:"role"`
	Department string    `gorm:"type:varchar(100);not null;index" json:"department"`
	Shift      string    `gorm:"type:varchar(50)" json:"shift"`
	IsActive   bool      `gorm:"not null;index" json:"is_active"`
	JoinDate   time.Time `gorm:"type:date" json:"join_date"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
