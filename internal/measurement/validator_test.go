package measurement

import (
	"testing"

	"fitlog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validMeasurement passes every rule; tests mutate single fields.
func validMeasurement() *models.BodyMeasurement {
	return &models.BodyMeasurement{
		UserID:       1,
		Weight:       70,
		Neck:         38,
		Shoulders:    110,
		Chest:        95,
		Waist:        80,
		Hip:          95,
		Glutes:       95,
		ThighLeft:    55,
		ThighRight:   48,
		CalfLeft:     38,
		CalfRight:    38,
		BicepsLeft:   35,
		BicepsRight:  34,
		ForearmLeft:  28,
		ForearmRight: 28,
	}
}

func TestValidateAcceptsValidMeasurement(t *testing.T) {
	assert.NoError(t, Validate(validMeasurement()))
}

func TestValidateNotPositive(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BodyMeasurement)
		field  string
	}{
		{"zero weight", func(m *models.BodyMeasurement) { m.Weight = 0 }, FieldWeight},
		{"negative neck", func(m *models.BodyMeasurement) { m.Neck = -5 }, FieldNeck},
		{"zero left calf", func(m *models.BodyMeasurement) { m.CalfLeft = 0 }, FieldCalfLeft},
		// Non-positivity wins even when other fields are broken too.
		{"zero weight with bad waist", func(m *models.BodyMeasurement) { m.Weight = 0; m.Waist = 500 }, FieldWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			tt.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			var mErr *Error
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, RuleNotPositive, mErr.Rule)
			assert.Equal(t, tt.field, mErr.Field)
		})
	}
}

func TestValidateOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BodyMeasurement)
		field  string
	}{
		{"weight below minimum", func(m *models.BodyMeasurement) { m.Weight = 29 }, FieldWeight},
		{"weight above maximum", func(m *models.BodyMeasurement) { m.Weight = 301 }, FieldWeight},
		{"neck too large", func(m *models.BodyMeasurement) { m.Neck = 53 }, FieldNeck},
		{"waist too small", func(m *models.BodyMeasurement) { m.Waist = 49 }, FieldWaist},
		{"forearm too small", func(m *models.BodyMeasurement) { m.ForearmRight = 14 }, FieldForearmRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			tt.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			var mErr *Error
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, RuleOutOfRange, mErr.Rule)
			assert.Equal(t, tt.field, mErr.Field)
		})
	}
}

func TestValidateRangeBoundariesInclusive(t *testing.T) {
	m := validMeasurement()
	m.Weight = 30
	assert.NoError(t, Validate(m))

	m.Weight = 300
	assert.NoError(t, Validate(m))
}

func TestValidateProportions(t *testing.T) {
	t.Run("waist equal to chest fails", func(t *testing.T) {
		m := validMeasurement()
		m.Waist = m.Chest

		err := Validate(m)
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, RuleProportion, mErr.Rule)
	})

	t.Run("waist above chest fails", func(t *testing.T) {
		m := validMeasurement()
		m.Chest = 90
		m.Waist = 100

		err := Validate(m)
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, RuleProportion, mErr.Rule)
	})

	t.Run("hip at 1.5x chest fails", func(t *testing.T) {
		m := validMeasurement()
		m.Chest = 100
		m.Hip = 150

		err := Validate(m)
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, RuleProportion, mErr.Rule)
	})
}

func TestValidateSymmetry(t *testing.T) {
	t.Run("thigh difference within tolerance passes", func(t *testing.T) {
		// 55 vs 48: difference 7, allowed 0.15 * 55 = 8.25.
		m := validMeasurement()
		m.ThighLeft = 55
		m.ThighRight = 48
		assert.NoError(t, Validate(m))
	})

	t.Run("thigh difference beyond tolerance fails", func(t *testing.T) {
		// 55 vs 40: difference 15, allowed 8.25.
		m := validMeasurement()
		m.ThighLeft = 55
		m.ThighRight = 40

		err := Validate(m)
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, RuleAsymmetry, mErr.Rule)
		assert.Equal(t, "thigh", mErr.Field)
	})

	t.Run("difference exactly at tolerance passes", func(t *testing.T) {
		// 50 vs 42.5: difference 7.5 == 0.15 * 50.
		m := validMeasurement()
		m.ThighLeft = 50
		m.ThighRight = 42.5
		assert.NoError(t, Validate(m))
	})

	t.Run("asymmetric forearm fails", func(t *testing.T) {
		m := validMeasurement()
		m.ForearmLeft = 30
		m.ForearmRight = 20

		err := Validate(m)
		var mErr *Error
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, RuleAsymmetry, mErr.Rule)
		assert.Equal(t, "forearm", mErr.Field)
	})
}
