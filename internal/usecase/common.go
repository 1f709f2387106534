package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidStatus     = errors.New("invalid status")
)

// Clock returns the current time. Usecases take one so tests can pin "today".
type Clock func() time.Time

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

// today is the calendar date of now, as stored in date columns.
func today(now Clock) time.Time {
	return entity.StartOfDay(now())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// participants resolves the patient and doctor referenced by clinical records.
type participants struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func (p participants) patient(ctx context.Context, rawID string) (*entity.Patient, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	patient, err := p.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (p participants) doctor(ctx context.Context, rawID string) (*entity.Doctor, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	doctor, err := p.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (p participants) resolve(ctx context.Context, patientID, doctorID string) (*entity.Patient, *entity.Doctor, error) {
	patient, err := p.patient(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	doctor, err := p.doctor(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	return patient, doctor, nil
}

// invalidateStats drops cached dashboard counters after a counted entity changed.
func invalidateStats(ctx context.Context, log *logrus.Logger, cache service.StatsCache) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnf("Failed to invalidate dashboard statistics: %+v", err)
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
