// Package measurement holds the body-measurement rules: field validation
// (positivity, anatomical ranges, proportions, bilateral symmetry) and
// record differencing. Everything here is pure; persistence and ownership
// are the caller's problem.
package measurement

import (
	"fmt"

	"fitlog/internal/models"
)

// Rule identifies which validation rule a measurement violated.
type Rule string

const (
	RuleNotPositive Rule = "not_positive"
	RuleOutOfRange  Rule = "out_of_range"
	RuleProportion  Rule = "proportion"
	RuleAsymmetry   Rule = "asymmetry"
)

// Error reports the first violated rule. Field is empty for proportion
// violations, which involve more than one field.
type Error struct {
	Rule   Rule
	Field  string
	Detail string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid measurement: %s", e.Detail)
	}
	return fmt.Sprintf("invalid measurement field %q: %s", e.Field, e.Detail)
}

// SymmetryTolerance is the allowed relative difference between the left
// and right side of a paired body part. A difference of exactly the
// tolerance passes.
const SymmetryTolerance = 0.15

// Range is an inclusive plausible-value interval for one field.
type Range struct {
	Min float64
	Max float64
}

// Ranges maps every measurement field to its anatomically plausible
// interval. Weight is in kilograms, everything else in centimeters.
var Ranges = map[string]Range{
	FieldWeight:       {30, 300},
	FieldNeck:         {20, 52},
	FieldShoulders:    {80, 160},
	FieldChest:        {60, 160},
	FieldWaist:        {50, 150},
	FieldHip:          {60, 160},
	FieldGlutes:       {60, 160},
	FieldThighLeft:    {35, 90},
	FieldThighRight:   {35, 90},
	FieldCalfLeft:     {25, 55},
	FieldCalfRight:    {25, 55},
	FieldBicepsLeft:   {20, 60},
	FieldBicepsRight:  {20, 60},
	FieldForearmLeft:  {15, 50},
	FieldForearmRight: {15, 50},
}

type pairedField struct {
	name  string
	left  string
	right string
}

var pairedFields = []pairedField{
	{"thigh", FieldThighLeft, FieldThighRight},
	{"calf", FieldCalfLeft, FieldCalfRight},
	{"biceps", FieldBicepsLeft, FieldBicepsRight},
	{"forearm", FieldForearmLeft, FieldForearmRight},
}

// Validate checks a measurement against all rules in a fixed order and
// returns a *Error for the first violation: positivity, then ranges,
// then proportions, then symmetry. It never aggregates violations.
func Validate(m *models.BodyMeasurement) error {
	values := fieldValues(m)

	for _, field := range FieldOrder {
		if values[field] <= 0 {
			return &Error{
				Rule:   RuleNotPositive,
				Field:  field,
				Detail: "value must be greater than zero",
			}
		}
	}

	for _, field := range FieldOrder {
		r := Ranges[field]
		v := values[field]
		if v < r.Min || v > r.Max {
			return &Error{
				Rule:   RuleOutOfRange,
				Field:  field,
				Detail: fmt.Sprintf("value %g outside plausible range %g-%g", v, r.Min, r.Max),
			}
		}
	}

	if m.Waist >= m.Chest {
		return &Error{
			Rule:   RuleProportion,
			Detail: fmt.Sprintf("waist (%g) must be smaller than chest (%g)", m.Waist, m.Chest),
		}
	}
	if m.Hip >= 1.5*m.Chest {
		return &Error{
			Rule:   RuleProportion,
			Detail: fmt.Sprintf("hip (%g) must be smaller than 1.5x chest (%g)", m.Hip, m.Chest),
		}
	}

	for _, p := range pairedFields {
		left, right := values[p.left], values[p.right]
		limit := SymmetryTolerance * max(left, right)
		if abs(left-right) > limit {
			return &Error{
				Rule:   RuleAsymmetry,
				Field:  p.name,
				Detail: fmt.Sprintf("left/right difference %g exceeds %g%% tolerance", abs(left-right), SymmetryTolerance*100),
			}
		}
	}

	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
