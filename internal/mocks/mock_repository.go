// Package mocks holds shared testify mocks for the repository
// interfaces, used by service and controller tests.
package mocks

import (
	"fitlog/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) Create(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) FindAll() ([]models.Exercise, error) {
	args := m.Called()
	return args.Get(0).([]models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) Create(routine *models.Routine) error {
	args := m.Called(routine)
	return args.Error(0)
}

func (m *MockRoutineRepository) FindAllByUserID(userID uint) ([]models.Routine, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) FindByID(id uint) (*models.Routine, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Routine), args.Error(1)
}

func (m *MockRoutineRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRoutineRepository) AddExercise(re *models.RoutineExercise) error {
	args := m.Called(re)
	return args.Error(0)
}

func (m *MockRoutineRepository) FindExercisesByRoutineID(routineID uint) ([]models.RoutineExercise, error) {
	args := m.Called(routineID)
	return args.Get(0).([]models.RoutineExercise), args.Error(1)
}

func (m *MockRoutineRepository) FindRoutineExerciseByID(id uint) (*models.RoutineExercise, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RoutineExercise), args.Error(1)
}

func (m *MockRoutineRepository) AddPlannedSet(set *models.PlannedSet) error {
	args := m.Called(set)
	return args.Error(0)
}

func (m *MockRoutineRepository) FindPlannedSetsByRoutineExerciseID(routineExerciseID uint) ([]models.PlannedSet, error) {
	args := m.Called(routineExerciseID)
	return args.Get(0).([]models.PlannedSet), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *models.WorkoutSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(id uint) (*models.WorkoutSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockSessionRepository) AddSetLog(log *models.SetLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSetLogsByRoutineExerciseID(routineExerciseID uint) ([]models.SetLog, error) {
	args := m.Called(routineExerciseID)
	return args.Get(0).([]models.SetLog), args.Error(1)
}

func (m *MockSessionRepository) FindSetLogsBySessionID(sessionID uint) ([]models.SetLog, error) {
	args := m.Called(sessionID)
	return args.Get(0).([]models.SetLog), args.Error(1)
}

type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) Create(measurement *models.BodyMeasurement) error {
	args := m.Called(measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) FindAllByUserID(userID uint) ([]models.BodyMeasurement, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindByID(id uint) (*models.BodyMeasurement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) FindLatestByUserID(userID uint) (*models.BodyMeasurement, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BodyMeasurement), args.Error(1)
}

func (m *MockMeasurementRepository) Update(measurement *models.BodyMeasurement) error {
	args := m.Called(measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
