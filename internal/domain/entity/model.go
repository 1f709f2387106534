package entity

import (
	"time"

	"github.com/google/uuid"
)

// Model is the primary key and timestamps shared by every table.
type Model struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Identifiable is implemented by every entity through its embedded Model.
type Identifiable interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
	GetCreatedAt() time.Time
	Touch(now time.Time)
}

func (m *Model) GetID() uuid.UUID {
	return m.ID
}

func (m *Model) SetID(id uuid.UUID) {
	m.ID = id
}

func (m *Model) GetCreatedAt() time.Time {
	return m.CreatedAt
}

// Touch sets UpdatedAt, and CreatedAt when it has not been set yet.
func (m *Model) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format of wall-clock times.
const TimeLayout = "15:04"

// StartOfDay returns the calendar date of t (in t's own location) as UTC
// midnight, the form date columns are stored in.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
