package entity

// Doctor is a member of the medical staff who can be booked.
type Doctor struct {
	Model
	Name           string   `gorm:"type:varchar(255);not null;index" json:"name"`
	Email          string   `gorm:"type:varchar(255);index" json:"email"`
	Specialization string   `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Experience     int      `gorm:"not null" json:"experience"`
	Qualifications string   `gorm:"type:text" json:"qualifications"`
	Phone          string   `gorm:"type:varchar(30)" json:"phone"`
	Address        string   `gorm:"type:text" json:"address"`
	AvailableHours string   `gorm:"type:varchar(50)" json:"available_hours"`
	AvailableDays  []string `gorm:"type:jsonb;serializer:json" json:"available_days"`
	Status         string   `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (Doctor) TableName() string {
	return "doctors"
}
