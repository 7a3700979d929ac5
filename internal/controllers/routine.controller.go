package controllers

import (
	"fitlog/internal/services"

	"github.com/gin-gonic/gin"
)

type RoutineController struct {
	workouts *services.WorkoutService
}

func NewRoutineController(workouts *services.WorkoutService) *RoutineController {
	return &RoutineController{workouts: workouts}
}

func (rc *RoutineController) CreateRoutine(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	routine, err := rc.workouts.CreateRoutine(req.Name, currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to create routine")
		return
	}
	respondCreated(c, "Routine created successfully", routine)
}

func (rc *RoutineController) ListRoutines(c *gin.Context) {
	routines, err := rc.workouts.ListRoutines(currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list routines")
		return
	}
	respondOK(c, "Routines retrieved successfully", routines)
}

func (rc *RoutineController) DeleteRoutine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.workouts.DeleteRoutine(id, currentUserID(c)); err != nil {
		respondError(c, err, "Failed to delete routine")
		return
	}
	respondOK(c, "Routine deleted successfully", nil)
}

func (rc *RoutineController) AddExercise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		ExerciseID uint `json:"exercise_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	re, err := rc.workouts.AddExerciseToRoutine(id, req.ExerciseID)
	if err != nil {
		respondError(c, err, "Failed to add exercise to routine")
		return
	}
	respondCreated(c, "Exercise added to routine", re)
}

func (rc *RoutineController) ListExercises(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercises, err := rc.workouts.ListRoutineExercises(id)
	if err != nil {
		respondError(c, err, "Failed to list routine exercises")
		return
	}
	respondOK(c, "Routine exercises retrieved successfully", exercises)
}

func (rc *RoutineController) AddPlannedSet(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}

	var req struct {
		SetNumber   int     `json:"set_number"`
		Weight      float64 `json:"weight"`
		Reps        int     `json:"reps"`
		RestSeconds int     `json:"rest_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	set, err := rc.workouts.AddPlannedSet(id, req.SetNumber, req.Weight, req.Reps, req.RestSeconds)
	if err != nil {
		respondError(c, err, "Failed to add planned set")
		return
	}
	respondCreated(c, "Planned set added", set)
}

func (rc *RoutineController) ListPlannedSets(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}

	sets, err := rc.workouts.ListPlannedSets(id)
	if err != nil {
		respondError(c, err, "Failed to list planned sets")
		return
	}
	respondOK(c, "Planned sets retrieved successfully", sets)
}

func (rc *RoutineController) ExerciseStats(c *gin.Context) {
	id, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return
	}

	stats, err := rc.workouts.ExerciseStats(id)
	if err != nil {
		respondError(c, err, "Failed to compute exercise stats")
		return
	}
	respondOK(c, "Exercise stats computed successfully", stats)
}
