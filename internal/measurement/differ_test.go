package measurement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCanonicalOrder(t *testing.T) {
	deltas := Diff(validMeasurement(), validMeasurement())

	require.Len(t, deltas, 15)
	for i, d := range deltas {
		assert.Equal(t, FieldOrder[i], d.Field)
		assert.Zero(t, d.Value)
	}
}

func TestDiffComputesCurrentMinusPrevious(t *testing.T) {
	current := validMeasurement()
	previous := validMeasurement()
	current.Weight = 72.5
	previous.Weight = 70
	current.Waist = 78
	previous.Waist = 80

	deltas := Diff(current, previous)

	byField := make(map[string]float64, len(deltas))
	for _, d := range deltas {
		byField[d.Field] = d.Value
	}
	assert.InDelta(t, 2.5, byField[FieldWeight], 1e-9)
	assert.InDelta(t, -2, byField[FieldWaist], 1e-9)
	assert.Zero(t, byField[FieldChest])
}

func TestDiffAntiSymmetry(t *testing.T) {
	a := validMeasurement()
	b := validMeasurement()
	b.Weight = 82
	b.Neck = 40
	b.ThighLeft = 60
	b.ForearmRight = 26

	ab := Diff(a, b)
	ba := Diff(b, a)

	require.Len(t, ba, len(ab))
	for i := range ab {
		assert.Equal(t, ab[i].Field, ba[i].Field)
		assert.InDelta(t, -ab[i].Value, ba[i].Value, 1e-9)
	}
}

// Diff intentionally skips validation: it must work on any two records.
func TestDiffIgnoresInvalidValues(t *testing.T) {
	current := validMeasurement()
	previous := validMeasurement()
	current.Weight = -10

	deltas := Diff(current, previous)
	byField := make(map[string]float64, len(deltas))
	for _, d := range deltas {
		byField[d.Field] = d.Value
	}
	assert.InDelta(t, -80, byField[FieldWeight], 1e-9)
}
