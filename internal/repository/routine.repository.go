package repository

import (
	"fitlog/internal/models"

	"gorm.io/gorm"
)

type RoutineRepository interface {
	Create(routine *models.Routine) error
	FindAllByUserID(userID uint) ([]models.Routine, error)
	FindByID(id uint) (*models.Routine, error)
	Delete(id uint) error
	AddExercise(re *models.RoutineExercise) error
	FindExercisesByRoutineID(routineID uint) ([]models.RoutineExercise, error)
	FindRoutineExerciseByID(id uint) (*models.RoutineExercise, error)
	AddPlannedSet(set *models.PlannedSet) error
	FindPlannedSetsByRoutineExerciseID(routineExerciseID uint) ([]models.PlannedSet, error)
}

type routineRepository struct {
	db *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) RoutineRepository {
	return &routineRepository{db}
}

func (r *routineRepository) Create(routine *models.Routine) error {
	return r.db.Create(routine).Error
}

func (r *routineRepository) FindAllByUserID(userID uint) ([]models.Routine, error) {
	var routines []models.Routine
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&routines).Error
	return routines, err
}

func (r *routineRepository) FindByID(id uint) (*models.Routine, error) {
	var routine models.Routine
	err := r.db.First(&routine, id).Error
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

// Delete removes a routine and everything hanging off it. The cascade is
// enforced here, in one transaction, rather than relying only on the
// schema-level constraints: set logs and planned sets of the routine's
// exercises, sessions, then the exercise placements and the routine.
func (r *routineRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		exerciseIDs := tx.Model(&models.RoutineExercise{}).
			Select("id").
			Where("routine_id = ?", id)

		if err := tx.Where("routine_exercise_id IN (?)", exerciseIDs).
			Delete(&models.SetLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_exercise_id IN (?)", exerciseIDs).
			Delete(&models.PlannedSet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", id).
			Delete(&models.WorkoutSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", id).
			Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Routine{}, id).Error
	})
}

func (r *routineRepository) AddExercise(re *models.RoutineExercise) error {
	return r.db.Create(re).Error
}

func (r *routineRepository) FindExercisesByRoutineID(routineID uint) ([]models.RoutineExercise, error) {
	var exercises []models.RoutineExercise
	err := r.db.Preload("Exercise").
		Where("routine_id = ?", routineID).
		Find(&exercises).Error
	return exercises, err
}

func (r *routineRepository) FindRoutineExerciseByID(id uint) (*models.RoutineExercise, error) {
	var re models.RoutineExercise
	err := r.db.Preload("Exercise").First(&re, id).Error
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func (r *routineRepository) AddPlannedSet(set *models.PlannedSet) error {
	return r.db.Create(set).Error
}

func (r *routineRepository) FindPlannedSetsByRoutineExerciseID(routineExerciseID uint) ([]models.PlannedSet, error) {
	var sets []models.PlannedSet
	err := r.db.Where("routine_exercise_id = ?", routineExerciseID).
		Order("set_number").
		Find(&sets).Error
	return sets, err
}
