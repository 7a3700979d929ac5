package services

import (
	"time"

	"fitlog/internal/apperrors"
	"fitlog/internal/measurement"
	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// MeasurementService guards the measurement store: every write is
// validated and checked against the requesting user before it reaches
// the repository.
type MeasurementService struct {
	measurements repository.MeasurementRepository
}

func NewMeasurementService(measurements repository.MeasurementRepository) *MeasurementService {
	return &MeasurementService{measurements: measurements}
}

func (s *MeasurementService) Create(m *models.BodyMeasurement, requestingUserID uint) error {
	if m.UserID != requestingUserID {
		return apperrors.New(apperrors.ErrUnauthorized,
			"measurement belongs to user %d, not requesting user %d", m.UserID, requestingUserID)
	}
	if err := measurement.Validate(m); err != nil {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if m.TakenAt.IsZero() {
		m.TakenAt = time.Now()
	}
	if err := s.measurements.Create(m); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func (s *MeasurementService) List(userID uint) ([]models.BodyMeasurement, error) {
	measurements, err := s.measurements.FindAllByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return measurements, nil
}

func (s *MeasurementService) Get(id, requestingUserID uint) (*models.BodyMeasurement, error) {
	m, err := s.measurements.FindByID(id)
	if err != nil {
		return nil, storeErr(err)
	}
	if m.UserID != requestingUserID {
		return nil, apperrors.New(apperrors.ErrUnauthorized, "measurement %d belongs to another user", id)
	}
	return m, nil
}

func (s *MeasurementService) Latest(userID uint) (*models.BodyMeasurement, error) {
	m, err := s.measurements.FindLatestByUserID(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	return m, nil
}

// Update replaces a record whole. Partial updates are not supported.
func (s *MeasurementService) Update(m *models.BodyMeasurement, requestingUserID uint) error {
	existing, err := s.measurements.FindByID(m.ID)
	if err != nil {
		return storeErr(err)
	}
	if existing.UserID != requestingUserID || m.UserID != requestingUserID {
		return apperrors.New(apperrors.ErrUnauthorized, "measurement %d belongs to another user", m.ID)
	}
	if err := measurement.Validate(m); err != nil {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}
	if err := s.measurements.Update(m); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func (s *MeasurementService) Delete(id, requestingUserID uint) error {
	m, err := s.measurements.FindByID(id)
	if err != nil {
		return storeErr(err)
	}
	if m.UserID != requestingUserID {
		return apperrors.New(apperrors.ErrUnauthorized, "measurement %d belongs to another user", id)
	}
	if err := s.measurements.Delete(id); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Progress diffs the user's two most recent measurements: each delta is
// latest minus the one before it.
func (s *MeasurementService) Progress(userID uint) ([]measurement.Delta, error) {
	history, err := s.measurements.FindAllByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if len(history) < 2 {
		return nil, apperrors.New(apperrors.ErrNotFound,
			"user %d has %d measurements, need at least 2 to compare", userID, len(history))
	}
	return measurement.Diff(&history[0], &history[1]), nil
}

// Compare diffs any two of the requesting user's measurements.
func (s *MeasurementService) Compare(currentID, previousID, requestingUserID uint) ([]measurement.Delta, error) {
	current, err := s.Get(currentID, requestingUserID)
	if err != nil {
		return nil, err
	}
	previous, err := s.Get(previousID, requestingUserID)
	if err != nil {
		return nil, err
	}
	return measurement.Diff(current, previous), nil
}
