// Package records finds personal records in the workout history, comparing
// sets logged on different equipment brands on a common scale.
//
// A record needs something to beat: when no previous best is known, the set
// becomes the baseline and Evaluate reports no record.
package records

import (
	"fmt"
	"strconv"

	"github.com/2beens/liftload/internal/loadmath"
	"github.com/2beens/liftload/internal/workout"
)

const defaultUnknownBrandRatio = 1.0

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=records_test

type historySource interface {
	SetsFor(ref workout.ExerciseRef) []workout.LoggedSet
}

type PersonalRecord struct {
	// BestWeightReps renders the best set as "<weight> x <reps>", weight on the
	// scale of the brand the record was requested for
	BestWeightReps string  `json:"bestWeightReps"`
	BestE1RM       float64 `json:"bestE1RM"`
	RepsAtBestE1RM int     `json:"repsAtBestE1RM"`
	Weight         float64 `json:"weight"`
}

type Tracker struct {
	history           historySource
	unknownBrandRatio float64
}

type Option func(*Tracker)

// WithUnknownBrandRatio sets the ratio assumed for brands without a known
// equivalency. The default of 1.0 treats unknown equipment as baseline.
func WithUnknownBrandRatio(ratio float64) Option {
	return func(t *Tracker) {
		if ratio > 0 {
			t.unknownBrandRatio = ratio
		}
	}
}

func NewTracker(history historySource, opts ...Option) *Tracker {
	t := &Tracker{
		history:           history,
		unknownBrandRatio: defaultUnknownBrandRatio,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) ratio(brands []workout.BrandEquivalency, brand string) float64 {
	b, ok := workout.FindBrand(brands, brand)
	if !ok || b.Ratio == nil || *b.Ratio <= 0 {
		return t.unknownBrandRatio
	}
	return *b.Ratio
}

// Project moves a weight logged on one brand onto the scale of another:
// base = weight x ratio(from), projected = base / ratio(to).
func (t *Tracker) Project(weight float64, brands []workout.BrandEquivalency, from, to string) float64 {
	base := weight * t.ratio(brands, from)
	return base / t.ratio(brands, to)
}

// FindPR scans the history of the exercise for the set with the best estimated
// 1RM on the scale of currentBrand. Estimates are compared at one decimal, and
// on a tie the set with fewer reps wins.
func (t *Tracker) FindPR(
	ref workout.ExerciseRef,
	brands []workout.BrandEquivalency,
	currentBrand string,
) (PersonalRecord, bool) {
	var best PersonalRecord
	for _, set := range t.history.SetsFor(ref) {
		reps := set.Record.AchievedReps()
		weight := t.Project(set.Record.Weight, brands, set.Record.MachineBrand, currentBrand)
		e1rm := loadmath.Estimate1RM(weight, reps)
		if e1rm <= 0 {
			continue
		}

		rounded := loadmath.Round(e1rm, 1)
		bestRounded := loadmath.Round(best.BestE1RM, 1)
		if rounded > bestRounded || (rounded == bestRounded && reps < best.RepsAtBestE1RM) {
			best = PersonalRecord{
				BestWeightReps: FormatWeightReps(weight, reps),
				BestE1RM:       e1rm,
				RepsAtBestE1RM: reps,
				Weight:         weight,
			}
		}
	}

	if best.BestE1RM <= 0 {
		return PersonalRecord{}, false
	}
	return best, true
}

// Evaluate estimates the 1RM of weight x reps and reports whether it beats the
// previously known best. Without a previous best there is nothing to beat:
// the first logged set is a baseline, not a record.
func (t *Tracker) Evaluate(previousBest, weight float64, reps int) (float64, bool) {
	e1rm := loadmath.Estimate1RM(weight, reps)
	if e1rm <= 0 || previousBest <= 0 {
		return e1rm, false
	}
	return e1rm, loadmath.Round(e1rm, 1) > loadmath.Round(previousBest, 1)
}

func FormatWeightReps(weight float64, reps int) string {
	w := strconv.FormatFloat(loadmath.Round(weight, 2), 'f', -1, 64)
	return fmt.Sprintf("%s x %d", w, reps)
}
