package measurement

import (
	"fitlog/internal/models"
)

// Canonical field names, in the order deltas are reported.
const (
	FieldWeight       = "weight"
	FieldNeck         = "neck"
	FieldShoulders    = "shoulders"
	FieldChest        = "chest"
	FieldWaist        = "waist"
	FieldHip          = "hip"
	FieldGlutes       = "glutes"
	FieldThighLeft    = "thigh_left"
	FieldThighRight   = "thigh_right"
	FieldCalfLeft     = "calf_left"
	FieldCalfRight    = "calf_right"
	FieldBicepsLeft   = "biceps_left"
	FieldBicepsRight  = "biceps_right"
	FieldForearmLeft  = "forearm_left"
	FieldForearmRight = "forearm_right"
)

// FieldOrder is the canonical ordering of all 15 measurement fields.
var FieldOrder = []string{
	FieldWeight,
	FieldNeck,
	FieldShoulders,
	FieldChest,
	FieldWaist,
	FieldHip,
	FieldGlutes,
	FieldThighLeft,
	FieldThighRight,
	FieldCalfLeft,
	FieldCalfRight,
	FieldBicepsLeft,
	FieldBicepsRight,
	FieldForearmLeft,
	FieldForearmRight,
}

// Delta is the change of one field between two measurements.
type Delta struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// Diff computes current minus previous for every field, in canonical
// field order. It performs no validation and no ownership checks; both
// are the caller's responsibility.
func Diff(current, previous *models.BodyMeasurement) []Delta {
	cur := fieldValues(current)
	prev := fieldValues(previous)

	deltas := make([]Delta, 0, len(FieldOrder))
	for _, field := range FieldOrder {
		deltas = append(deltas, Delta{Field: field, Value: cur[field] - prev[field]})
	}
	return deltas
}

func fieldValues(m *models.BodyMeasurement) map[string]float64 {
	return map[string]float64{
		FieldWeight:       m.Weight,
		FieldNeck:         m.Neck,
		FieldShoulders:    m.Shoulders,
		FieldChest:        m.Chest,
		FieldWaist:        m.Waist,
		FieldHip:          m.Hip,
		FieldGlutes:       m.Glutes,
		FieldThighLeft:    m.ThighLeft,
		FieldThighRight:   m.ThighRight,
		FieldCalfLeft:     m.CalfLeft,
		FieldCalfRight:    m.CalfRight,
		FieldBicepsLeft:   m.BicepsLeft,
		FieldBicepsRight:  m.BicepsRight,
		FieldForearmLeft:  m.ForearmLeft,
		FieldForearmRight: m.ForearmRight,
	}
}
