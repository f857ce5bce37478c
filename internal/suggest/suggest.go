// Package suggest proposes the load for the next set from a reference 1RM.
package suggest

import (
	"math"

	"github.com/2beens/liftload/internal/catalog"
	"github.com/2beens/liftload/internal/loadmath"
	"github.com/2beens/liftload/internal/workout"
)

type Request struct {
	Exercise workout.ExerciseDefinition
	// Entry is the catalog entry of the exercise, nil when the exercise is not in the catalog
	Entry    *catalog.Entry
	SetIndex int
	Dynamic  workout.DynamicWeight
	Settings workout.Settings
	Brand    string
}

// Suggestion is the computed load. The dynamic weights are passed through as
// one-tap alternatives and never change Weight.
type Suggestion struct {
	Weight        float64  `json:"weight"`
	EffectiveReps int      `json:"effectiveReps"`
	Reference1RM  float64  `json:"reference1RM"`
	Consolidated  *float64 `json:"consolidated,omitempty"`
	Technical     *float64 `json:"technical,omitempty"`
}

// EffectiveReps converts an RPE or RIR qualified rep target into the rep count
// the lifter could do to failure, so one inversion serves every intensity mode.
func EffectiveReps(target workout.TargetSet) int {
	reps := target.TargetReps
	switch target.IntensityMode {
	case workout.IntensityRPE:
		if target.TargetRPE != nil {
			reps += int(math.Round(10 - *target.TargetRPE))
		}
	case workout.IntensityRIR:
		if target.TargetRIR != nil {
			reps += *target.TargetRIR
		}
	}
	if target.TargetReps > 0 && reps < 1 {
		return 1
	}
	return reps
}

// Reference1RM returns the catalog calculated 1RM, or the plan reference 1RM.
func Reference1RM(exercise workout.ExerciseDefinition, entry *catalog.Entry) (float64, bool) {
	if entry != nil && entry.Calculated1RM != nil && *entry.Calculated1RM > 0 {
		return *entry.Calculated1RM, true
	}
	if exercise.Reference1RM != nil && *exercise.Reference1RM > 0 {
		return *exercise.Reference1RM, true
	}
	return 0, false
}

// Brands returns the brand equivalencies that apply to the exercise: the catalog
// ones when the catalog has any, the plan ones otherwise.
func Brands(exercise workout.ExerciseDefinition, entry *catalog.Entry) []workout.BrandEquivalency {
	if entry != nil && len(entry.Brands) > 0 {
		return entry.Brands
	}
	return exercise.Brands
}

// Suggest computes the load for the requested set. It returns false when there
// is no reference 1RM or the set has no rep target; the host then falls back
// to the last used weight.
func Suggest(req Request) (Suggestion, bool) {
	if req.SetIndex < 0 || req.SetIndex >= len(req.Exercise.Sets) {
		return Suggestion{}, false
	}
	reference, ok := Reference1RM(req.Exercise, req.Entry)
	if !ok {
		return Suggestion{}, false
	}

	target := req.Exercise.Sets[req.SetIndex]
	suggestion := Suggestion{
		EffectiveReps: EffectiveReps(target),
		Reference1RM:  reference,
		Consolidated:  req.Dynamic.Consolidated,
		Technical:     req.Dynamic.Technical,
	}

	var load float64
	if req.Exercise.TrainingMode == workout.TrainingModePercent && target.TargetPercentageRM != nil {
		load = reference * *target.TargetPercentageRM / 100
	} else {
		load = loadmath.LoadForReps(reference, suggestion.EffectiveReps)
	}
	if load <= 0 {
		return Suggestion{}, false
	}

	// the reference is on the base scale; move it onto the selected machine
	if brand, ok := workout.FindBrand(Brands(req.Exercise, req.Entry), req.Brand); ok && brand.Ratio != nil && *brand.Ratio > 0 {
		load /= *brand.Ratio
	}

	suggestion.Weight = loadmath.Quantize(load, req.Settings.WeightUnit)
	return suggestion, true
}
