package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"fitlog/internal/apperrors"
	"fitlog/internal/models"
	"fitlog/internal/repository"

	"gorm.io/gorm"
)

// WorkoutService orchestrates routines, their exercises and planned
// sets, training sessions and the per-set logs recorded during them.
type WorkoutService struct {
	routines  repository.RoutineRepository
	sessions  repository.SessionRepository
	exercises repository.ExerciseRepository
}

func NewWorkoutService(
	routines repository.RoutineRepository,
	sessions repository.SessionRepository,
	exercises repository.ExerciseRepository,
) *WorkoutService {
	return &WorkoutService{
		routines:  routines,
		sessions:  sessions,
		exercises: exercises,
	}
}

// ExerciseStats are derived from every set ever logged against one
// exercise placement, across all sessions.
type ExerciseStats struct {
	MaxWeight          float64 `json:"max_weight"`
	EstimatedOneRepMax int     `json:"estimated_one_rep_max"`
	BestSetVolume      float64 `json:"best_set_volume"`
	BestSessionVolume  float64 `json:"best_session_volume"`
}

func (s *WorkoutService) CreateRoutine(name string, userID uint) (*models.Routine, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "routine name is required")
	}
	routine := &models.Routine{Name: name, UserID: userID}
	if err := s.routines.Create(routine); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return routine, nil
}

func (s *WorkoutService) ListRoutines(userID uint) ([]models.Routine, error) {
	routines, err := s.routines.FindAllByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return routines, nil
}

// DeleteRoutine removes a routine owned by userID, cascading to its
// exercise placements, planned sets, sessions and set logs.
func (s *WorkoutService) DeleteRoutine(routineID, userID uint) error {
	routine, err := s.routines.FindByID(routineID)
	if err != nil {
		return storeErr(err)
	}
	if routine.UserID != userID {
		return apperrors.New(apperrors.ErrUnauthorized, "routine %d does not belong to user %d", routineID, userID)
	}
	if err := s.routines.Delete(routineID); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// AddExerciseToRoutine places a predefined exercise into a routine.
// The same exercise may be placed multiple times.
func (s *WorkoutService) AddExerciseToRoutine(routineID, exerciseID uint) (*models.RoutineExercise, error) {
	if _, err := s.routines.FindByID(routineID); err != nil {
		return nil, storeErr(err)
	}
	if _, err := s.exercises.FindByID(exerciseID); err != nil {
		return nil, storeErr(err)
	}

	re := &models.RoutineExercise{RoutineID: routineID, ExerciseID: exerciseID}
	if err := s.routines.AddExercise(re); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return re, nil
}

func (s *WorkoutService) ListRoutineExercises(routineID uint) ([]models.RoutineExercise, error) {
	exercises, err := s.routines.FindExercisesByRoutineID(routineID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return exercises, nil
}

func (s *WorkoutService) AddPlannedSet(routineExerciseID uint, setNumber int, weight float64, reps, restSeconds int) (*models.PlannedSet, error) {
	if setNumber < 0 || reps < 0 || restSeconds < 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "set number, reps and rest seconds must not be negative")
	}
	if weight < 0 {
		// Zero is allowed: bodyweight exercises have no external load.
		return nil, apperrors.New(apperrors.ErrValidation, "weight must not be negative")
	}
	if _, err := s.routines.FindRoutineExerciseByID(routineExerciseID); err != nil {
		return nil, storeErr(err)
	}

	set := &models.PlannedSet{
		RoutineExerciseID: routineExerciseID,
		SetNumber:         setNumber,
		Weight:            weight,
		Reps:              reps,
		RestSeconds:       restSeconds,
	}
	if err := s.routines.AddPlannedSet(set); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return set, nil
}

func (s *WorkoutService) ListPlannedSets(routineExerciseID uint) ([]models.PlannedSet, error) {
	sets, err := s.routines.FindPlannedSetsByRoutineExerciseID(routineExerciseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return sets, nil
}

// StartSession opens a new active session against an existing routine.
func (s *WorkoutService) StartSession(routineID uint) (*models.WorkoutSession, error) {
	if _, err := s.routines.FindByID(routineID); err != nil {
		return nil, storeErr(err)
	}

	session := &models.WorkoutSession{
		RoutineID: routineID,
		StartedAt: time.Now(),
		Status:    models.SessionActive,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return session, nil
}

// CompleteSession transitions an active session to its terminal state.
// Completing an already-completed session is an error.
func (s *WorkoutService) CompleteSession(sessionID uint) error {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return storeErr(err)
	}
	if session.Status == models.SessionCompleted {
		return apperrors.New(apperrors.ErrValidation, "session %d is already completed", sessionID)
	}
	if err := s.sessions.UpdateStatus(sessionID, models.SessionCompleted); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// LogSet records an actually performed set. The session must still be
// active and the exercise placement must exist.
func (s *WorkoutService) LogSet(sessionID, routineExerciseID uint, setNumber int, weight float64, reps int, completed bool) (*models.SetLog, error) {
	if setNumber < 0 || reps < 0 || weight < 0 {
		return nil, apperrors.New(apperrors.ErrValidation, "set number, reps and weight must not be negative")
	}

	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	if session.Status != models.SessionActive {
		return nil, apperrors.New(apperrors.ErrValidation, "session %d is not active", sessionID)
	}
	if _, err := s.routines.FindRoutineExerciseByID(routineExerciseID); err != nil {
		return nil, storeErr(err)
	}

	log := &models.SetLog{
		SessionID:         sessionID,
		RoutineExerciseID: routineExerciseID,
		SetNumber:         setNumber,
		Weight:            weight,
		Reps:              reps,
		Completed:         completed,
	}
	if err := s.sessions.AddSetLog(log); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return log, nil
}

// ExerciseStats derives best-effort numbers from every set log of one
// exercise placement. All stats are zero when nothing was logged yet.
//
// The one-rep max uses the Epley approximation, weight x (1 + reps/30),
// rounded to the nearest integer.
func (s *WorkoutService) ExerciseStats(routineExerciseID uint) (*ExerciseStats, error) {
	logs, err := s.sessions.FindSetLogsByRoutineExerciseID(routineExerciseID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	stats := &ExerciseStats{}
	sessionVolumes := make(map[uint]float64)

	var bestOneRepMax float64
	for _, l := range logs {
		if l.Weight > stats.MaxWeight {
			stats.MaxWeight = l.Weight
		}
		oneRepMax := l.Weight * (1 + float64(l.Reps)/30)
		if oneRepMax > bestOneRepMax {
			bestOneRepMax = oneRepMax
		}
		volume := l.Weight * float64(l.Reps)
		if volume > stats.BestSetVolume {
			stats.BestSetVolume = volume
		}
		sessionVolumes[l.SessionID] += volume
	}
	stats.EstimatedOneRepMax = int(math.Round(bestOneRepMax))

	for _, volume := range sessionVolumes {
		if volume > stats.BestSessionVolume {
			stats.BestSessionVolume = volume
		}
	}
	return stats, nil
}

// storeErr classifies a repository error: a missing row is NotFound,
// anything else is a storage failure.
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrNotFound, err)
	}
	return apperrors.Wrap(apperrors.ErrStorage, err)
}
