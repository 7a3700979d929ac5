package repository

import (
	"fitlog/internal/models"

	"gorm.io/gorm"
)

type MeasurementRepository interface {
	Create(m *models.BodyMeasurement) error
	FindAllByUserID(userID uint) ([]models.BodyMeasurement, error)
	FindByID(id uint) (*models.BodyMeasurement, error)
	FindLatestByUserID(userID uint) (*models.BodyMeasurement, error)
	Update(m *models.BodyMeasurement) error
	Delete(id uint) error
}

type measurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db}
}

func (r *measurementRepository) Create(m *models.BodyMeasurement) error {
	return r.db.Create(m).Error
}

func (r *measurementRepository) FindAllByUserID(userID uint) ([]models.BodyMeasurement, error) {
	var measurements []models.BodyMeasurement
	err := r.db.Where("user_id = ?", userID).
		Order("taken_at DESC").
		Find(&measurements).Error
	return measurements, err
}

func (r *measurementRepository) FindByID(id uint) (*models.BodyMeasurement, error) {
	var m models.BodyMeasurement
	err := r.db.First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementRepository) FindLatestByUserID(userID uint) (*models.BodyMeasurement, error) {
	var m models.BodyMeasurement
	err := r.db.Where("user_id = ?", userID).
		Order("taken_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *measurementRepository) Update(m *models.BodyMeasurement) error {
	return r.db.Save(m).Error
}

func (r *measurementRepository) Delete(id uint) error {
	return r.db.Delete(&models.BodyMeasurement{}, id).Error
}
