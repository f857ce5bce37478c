// Package loadmath holds the pure load formulas: Brzycki 1RM estimation,
// its inverse and quantization to the available plate increment.
package loadmath

import (
	"math"

	"github.com/2beens/liftload/internal/workout"
)

const (
	brzyckiIntercept = 1.0278
	brzyckiSlope     = 0.0278

	IncrementKg  = 1.25
	IncrementLbs = 2.5
)

// brzyckiFactor returns the Brzycki divisor for the given reps.
// It crosses zero around 37 reps.
func brzyckiFactor(reps int) float64 {
	return brzyckiIntercept - brzyckiSlope*float64(reps)
}

// Estimate1RM estimates the one rep max from a set of weight x reps.
// Returns 0 when there is no usable estimate (non positive input, or too many reps
// for the formula); callers must treat 0 as "no estimate".
func Estimate1RM(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}

	factor := brzyckiFactor(reps)
	if factor <= 0 {
		return 0
	}
	return weight / factor
}

// LoadForReps is the inverse of Estimate1RM: the load that a lifter with the
// given e1RM can move for the given reps.
func LoadForReps(e1RM float64, reps int) float64 {
	if reps <= 0 || e1RM <= 0 {
		return 0
	}
	if reps == 1 {
		return e1RM
	}

	load := e1RM * brzyckiFactor(reps)
	if load <= 0 {
		return 0
	}
	return load
}

// Increment returns the smallest loadable step for the unit.
// Unknown units are treated as metric.
func Increment(unit workout.WeightUnit) float64 {
	if unit == workout.UnitLbs {
		return IncrementLbs
	}
	return IncrementKg
}

// Quantize rounds the weight to the nearest loadable increment,
// half to even on the increment.
func Quantize(weight float64, unit workout.WeightUnit) float64 {
	if weight <= 0 {
		return 0
	}
	step := Increment(unit)
	return math.RoundToEven(weight/step) * step
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
