package controllers

import (
	"errors"
	"log"
	"time"

	"fitlog/internal/apperrors"
	"fitlog/internal/cache"
	"fitlog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const exerciseCacheTTL = 12 * time.Hour

// ExerciseController serves the predefined-exercise catalog. The list
// is read-only reference data, so it is served cache-aside from Redis
// when a cache client is configured.
type ExerciseController struct {
	repo  repository.ExerciseRepository
	cache *cache.RedisClient
}

func NewExerciseController(repo repository.ExerciseRepository, cache *cache.RedisClient) *ExerciseController {
	return &ExerciseController{repo: repo, cache: cache}
}

func (ec *ExerciseController) ListExercises(c *gin.Context) {
	if ec.cache != nil {
		exercises, found, err := ec.cache.GetExercises()
		if err != nil {
			log.Printf("Exercise cache read failed, falling back to database: %v", err)
		} else if found {
			respondOK(c, "Exercises retrieved successfully", exercises)
			return
		}
	}

	exercises, err := ec.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to list exercises")
		return
	}

	if ec.cache != nil {
		if err := ec.cache.StoreExercises(exercises, exerciseCacheTTL); err != nil {
			log.Printf("Exercise cache write failed: %v", err)
		}
	}
	respondOK(c, "Exercises retrieved successfully", exercises)
}

func (ec *ExerciseController) GetExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := ec.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.Wrap(apperrors.ErrNotFound, err), "Exercise not found")
			return
		}
		respondError(c, err, "Failed to get exercise")
		return
	}
	respondOK(c, "Exercise retrieved successfully", exercise)
}
