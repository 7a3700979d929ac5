package repository

import (
	"fitlog/internal/models"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *models.WorkoutSession) error
	FindByID(id uint) (*models.WorkoutSession, error)
	UpdateStatus(id uint, status string) error
	AddSetLog(log *models.SetLog) error
	FindSetLogsByRoutineExerciseID(routineExerciseID uint) ([]models.SetLog, error)
	FindSetLogsBySessionID(sessionID uint) ([]models.SetLog, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db}
}

func (r *sessionRepository) Create(session *models.WorkoutSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := r.db.First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.WorkoutSession{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *sessionRepository) AddSetLog(log *models.SetLog) error {
	return r.db.Create(log).Error
}

func (r *sessionRepository) FindSetLogsByRoutineExerciseID(routineExerciseID uint) ([]models.SetLog, error) {
	var logs []models.SetLog
	err := r.db.Where("routine_exercise_id = ?", routineExerciseID).
		Find(&logs).Error
	return logs, err
}

func (r *sessionRepository) FindSetLogsBySessionID(sessionID uint) ([]models.SetLog, error) {
	var logs []models.SetLog
	err := r.db.Where("session_id = ?", sessionID).
		Find(&logs).Error
	return logs, err
}
