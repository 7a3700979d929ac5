package controllers

import (
	"fitlog/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	workouts *services.WorkoutService
}

func NewSessionController(workouts *services.WorkoutService) *SessionController {
	return &SessionController{workouts: workouts}
}

func (sc *SessionController) StartSession(c *gin.Context) {
	var req struct {
		RoutineID uint `json:"routine_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	session, err := sc.workouts.StartSession(req.RoutineID)
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}
	respondCreated(c, "Session started", session)
}

func (sc *SessionController) CompleteSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.workouts.CompleteSession(id); err != nil {
		respondError(c, err, "Failed to complete session")
		return
	}
	respondOK(c, "Session completed", nil)
}

func (sc *SessionController) LogSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		RoutineExerciseID uint    `json:"routine_exercise_id"`
		SetNumber         int     `json:"set_number"`
		Weight            float64 `json:"weight"`
		Reps              int     `json:"reps"`
		Completed         bool    `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	log, err := sc.workouts.LogSet(id, req.RoutineExerciseID, req.SetNumber, req.Weight, req.Reps, req.Completed)
	if err != nil {
		respondError(c, err, "Failed to log set")
		return
	}
	respondCreated(c, "Set logged", log)
}
