package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/controllers"
	"fitlog/internal/mocks"
	"fitlog/internal/models"
	"fitlog/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// addAuthMiddleware injects the user id the way the real JWT middleware
// would.
func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", "ana@x.com")
		c.Next()
	}
}

func validMeasurementBody(userID uint) map[string]interface{} {
	return map[string]interface{}{
		"user_id": userID,
		"weight":  70, "neck": 38, "shoulders": 110, "chest": 95,
		"waist": 80, "hip": 95, "glutes": 95,
		"thigh_left": 55, "thigh_right": 48,
		"calf_left": 38, "calf_right": 38,
		"biceps_left": 35, "biceps_right": 34,
		"forearm_left": 28, "forearm_right": 28,
	}
}

func TestCreateMeasurementEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockMeasurementRepository)
		expectedStatus int
	}{
		{
			name:           "successful creation",
			userID:         1,
			requestBody:    validMeasurementBody(1),
			setupMock: func(m *mocks.MockMeasurementRepository) {
				m.On("Create", mock.AnythingOfType("*models.BodyMeasurement")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "out-of-range field",
			userID: 1,
			requestBody: func() map[string]interface{} {
				body := validMeasurementBody(1)
				body["weight"] = 301
				return body
			}(),
			setupMock:      func(m *mocks.MockMeasurementRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "measurement for another user",
			userID:         1,
			requestBody:    validMeasurementBody(2),
			setupMock:      func(m *mocks.MockMeasurementRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid JSON",
			userID:         1,
			requestBody:    nil,
			setupMock:      func(m *mocks.MockMeasurementRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockMeasurementRepository)
			tt.setupMock(mockRepo)

			controller := controllers.NewMeasurementController(services.NewMeasurementService(mockRepo))
			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/measurements", controller.CreateMeasurement)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest(http.MethodPost, "/measurements", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteRoutineEndpoint(t *testing.T) {
	t.Run("non-owner gets forbidden", func(t *testing.T) {
		routineRepo := new(mocks.MockRoutineRepository)
		sessionRepo := new(mocks.MockSessionRepository)
		exerciseRepo := new(mocks.MockExerciseRepository)
		routineRepo.On("FindByID", uint(3)).Return(&models.Routine{ID: 3, UserID: 9}, nil)

		controller := controllers.NewRoutineController(
			services.NewWorkoutService(routineRepo, sessionRepo, exerciseRepo))
		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/routines/:id", controller.DeleteRoutine)

		req := httptest.NewRequest(http.MethodDelete, "/routines/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		routineRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		routineRepo := new(mocks.MockRoutineRepository)
		controller := controllers.NewRoutineController(
			services.NewWorkoutService(routineRepo, new(mocks.MockSessionRepository), new(mocks.MockExerciseRepository)))
		router := setupTestRouter()
		router.Use(addAuthMiddleware(1))
		router.DELETE("/routines/:id", controller.DeleteRoutine)

		req := httptest.NewRequest(http.MethodDelete, "/routines/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExerciseStatsEndpoint(t *testing.T) {
	routineRepo := new(mocks.MockRoutineRepository)
	sessionRepo := new(mocks.MockSessionRepository)
	sessionRepo.On("FindSetLogsByRoutineExerciseID", uint(4)).Return([]models.SetLog{
		{SessionID: 1, Weight: 80, Reps: 5},
		{SessionID: 1, Weight: 90, Reps: 3},
	}, nil)

	controller := controllers.NewRoutineController(
		services.NewWorkoutService(routineRepo, sessionRepo, new(mocks.MockExerciseRepository)))
	router := setupTestRouter()
	router.Use(addAuthMiddleware(1))
	router.GET("/routine-exercises/:exercise_id/stats", controller.ExerciseStats)

	req := httptest.NewRequest(http.MethodGet, "/routine-exercises/4/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			MaxWeight          float64 `json:"max_weight"`
			EstimatedOneRepMax int     `json:"estimated_one_rep_max"`
			BestSetVolume      float64 `json:"best_set_volume"`
			BestSessionVolume  float64 `json:"best_session_volume"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90.0, resp.Data.MaxWeight)
	assert.Equal(t, 99, resp.Data.EstimatedOneRepMax)
	assert.Equal(t, 400.0, resp.Data.BestSetVolume)
	assert.Equal(t, 670.0, resp.Data.BestSessionVolume)
}
