package entity

// User represents the centralized authentication table
type User struct {
	Model
	RoleID   int    `gorm:"not null;index" json:"role_id"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"`
	FullName string `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive bool   `gorm:"not null;index" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
