// Package plates turns a target barbell load into the plates to put on each side.
//
// The decomposition is greedy: take the heaviest plate that still fits, repeat.
// Greedy is optimal for the standard metric and imperial plate sets because each
// denomination (nearly) divides the one above it; for arbitrary denomination sets
// it is an assumption, not a guarantee.
package plates

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/2beens/liftload/internal/loadmath"
	"github.com/2beens/liftload/internal/workout"
)

// epsilon absorbs float drift, e.g. 41.25-25-15 != 1.25
const epsilon = 1e-9

var (
	metricPlates   = []float64{25, 20, 15, 10, 5, 2.5, 1.25, 0.5, 0.25}
	imperialPlates = []float64{45, 35, 25, 10, 5, 2.5, 1}
)

// Denominations returns the standard plate set for the unit, heaviest first.
func Denominations(unit workout.WeightUnit) []float64 {
	if unit == workout.UnitLbs {
		return slices.Clone(imperialPlates)
	}
	return slices.Clone(metricPlates)
}

type Plate struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// Breakdown is the per-side plate load. Remainder is expressed in total-load
// terms (both sides) and is the part no plate could cover.
type Breakdown struct {
	PerSide   []Plate `json:"perSide"`
	Remainder float64 `json:"remainder"`
}

// PlateWeight returns the plate weight loaded on one side.
func (b Breakdown) PlateWeight() float64 {
	var sum float64
	for _, p := range b.PerSide {
		sum += p.Weight * float64(p.Count)
	}
	return sum
}

func (b Breakdown) String() string {
	if len(b.PerSide) == 0 {
		return "empty bar"
	}
	parts := make([]string, 0, len(b.PerSide))
	for _, p := range b.PerSide {
		parts = append(parts, fmt.Sprintf("%s×%d", strconv.FormatFloat(p.Weight, 'f', -1, 64), p.Count))
	}
	return strings.Join(parts, " + ")
}

// Decompose splits total-barWeight into per-side plates using the given denominations.
// A total that is not finite gives an empty breakdown.
func Decompose(total, barWeight float64, denominations []float64) Breakdown {
	if math.IsNaN(total) || math.IsInf(total, 0) || math.IsNaN(barWeight) || math.IsInf(barWeight, 0) {
		return Breakdown{}
	}
	if total <= barWeight {
		return Breakdown{}
	}

	plates := make([]float64, 0, len(denominations))
	for _, d := range denominations {
		if d > 0 {
			plates = append(plates, d)
		}
	}
	slices.SortFunc(plates, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	plates = slices.Compact(plates)

	perSide := (total - barWeight) / 2
	var result Breakdown
	for _, plate := range plates {
		count := int(math.Floor((perSide + epsilon) / plate))
		if count > 0 {
			perSide -= float64(count) * plate
			result.PerSide = append(result.PerSide, Plate{Weight: plate, Count: count})
		}
	}

	if perSide < epsilon {
		perSide = 0
	}
	result.Remainder = loadmath.Round(perSide*2, 2)
	return result
}

// ForSettings decomposes using the plates from settings, or the standard set for the unit.
func ForSettings(total float64, settings workout.Settings) Breakdown {
	denominations := settings.Plates
	if len(denominations) == 0 {
		denominations = Denominations(settings.WeightUnit)
	}
	return Decompose(total, settings.BarbellWeight, denominations)
}
