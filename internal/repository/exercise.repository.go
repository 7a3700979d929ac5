package repository

import (
	"fitlog/internal/models"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(exercise *models.Exercise) error
	FindAll() ([]models.Exercise, error)
	FindByID(id uint) (*models.Exercise, error)
	Count() (int64, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db}
}

func (r *exerciseRepository) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *exerciseRepository) FindAll() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Order("name").Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) FindByID(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Exercise{}).Count(&count).Error
	return count, err
}
