package controllers

import (
	"fitlog/internal/models"
	"fitlog/internal/services"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	measurements *services.MeasurementService
}

func NewMeasurementController(measurements *services.MeasurementService) *MeasurementController {
	return &MeasurementController{measurements: measurements}
}

func (mc *MeasurementController) CreateMeasurement(c *gin.Context) {
	var m models.BodyMeasurement
	if err := c.ShouldBindJSON(&m); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}

	userID := currentUserID(c)
	if m.UserID == 0 {
		m.UserID = userID
	}

	if err := mc.measurements.Create(&m, userID); err != nil {
		respondError(c, err, "Failed to create measurement")
		return
	}
	respondCreated(c, "Measurement recorded successfully", m)
}

func (mc *MeasurementController) ListMeasurements(c *gin.Context) {
	measurements, err := mc.measurements.List(currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to list measurements")
		return
	}
	respondOK(c, "Measurements retrieved successfully", measurements)
}

func (mc *MeasurementController) GetMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	m, err := mc.measurements.Get(id, currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to get measurement")
		return
	}
	respondOK(c, "Measurement retrieved successfully", m)
}

func (mc *MeasurementController) LatestMeasurement(c *gin.Context) {
	m, err := mc.measurements.Latest(currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to get latest measurement")
		return
	}
	respondOK(c, "Latest measurement retrieved successfully", m)
}

func (mc *MeasurementController) UpdateMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var m models.BodyMeasurement
	if err := c.ShouldBindJSON(&m); err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return
	}
	m.ID = id

	if err := mc.measurements.Update(&m, currentUserID(c)); err != nil {
		respondError(c, err, "Failed to update measurement")
		return
	}
	respondOK(c, "Measurement updated successfully", m)
}

func (mc *MeasurementController) DeleteMeasurement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := mc.measurements.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err, "Failed to delete measurement")
		return
	}
	respondOK(c, "Measurement deleted successfully", nil)
}

// Progress returns the per-field deltas between the user's two most
// recent measurements.
func (mc *MeasurementController) Progress(c *gin.Context) {
	deltas, err := mc.measurements.Progress(currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to compute progress")
		return
	}
	respondOK(c, "Progress computed successfully", deltas)
}

func (mc *MeasurementController) Compare(c *gin.Context) {
	currentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	previousID, ok := parseIDParam(c, "previous_id")
	if !ok {
		return
	}

	deltas, err := mc.measurements.Compare(currentID, previousID, currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to compare measurements")
		return
	}
	respondOK(c, "Measurements compared successfully", deltas)
}
