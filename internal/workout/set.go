package workout

import (
	"fmt"
	"time"
)

// IntensityMode can be one of:
//   - approx
//   - rpe
//   - rir
//   - failure
//   - amrap
type IntensityMode string

const (
	IntensityApprox  IntensityMode = "approx"
	IntensityRPE     IntensityMode = "rpe"
	IntensityRIR     IntensityMode = "rir"
	IntensityFailure IntensityMode = "failure"
	IntensityAMRAP   IntensityMode = "amrap"
)

func (im IntensityMode) String() string {
	return string(im)
}

func (im IntensityMode) IsValid() bool {
	switch im {
	case IntensityApprox,
		IntensityRPE,
		IntensityRIR,
		IntensityFailure,
		IntensityAMRAP:
		return true
	default:
		return false
	}
}

type Side string

const (
	SideNone  Side = "none"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

func (s Side) String() string {
	if s == "" {
		return string(SideNone)
	}
	return string(s)
}

// PendingSide is the unilateral commit phase of the active set. Only the left
// side can be pending; a right commit finalizes the set and clears it.
type PendingSide string

const (
	PendingNone PendingSide = "none"
	PendingLeft PendingSide = "left"
)

func (p PendingSide) IsPending() bool {
	return p == PendingLeft
}

type TargetSet struct {
	ID    string `json:"id" yaml:"id"`
	Index int    `json:"index" yaml:"index"`
	// TargetReps is 0 for sets prescribed by duration
	TargetReps         int           `json:"targetReps,omitempty" yaml:"targetReps,omitempty"`
	TargetDuration     int           `json:"targetDuration,omitempty" yaml:"targetDuration,omitempty"`
	IntensityMode      IntensityMode `json:"intensityMode" yaml:"intensityMode"`
	TargetRPE          *float64      `json:"targetRPE,omitempty" yaml:"targetRPE,omitempty"`
	TargetRIR          *int          `json:"targetRIR,omitempty" yaml:"targetRIR,omitempty"`
	TargetPercentageRM *float64      `json:"targetPercentageRM,omitempty" yaml:"targetPercentageRM,omitempty"`
	ConsolidatedWeight *float64      `json:"consolidatedWeight,omitempty" yaml:"consolidatedWeight,omitempty"`
	TechnicalWeight    *float64      `json:"technicalWeight,omitempty" yaml:"technicalWeight,omitempty"`
}

// CompletedSetRecord is produced once per logged set, or once per side for
// unilateral exercises. Records are append-only within a session.
type CompletedSetRecord struct {
	ID              string    `json:"id" yaml:"id"`
	ExerciseID      string    `json:"exerciseId" yaml:"exerciseId"`
	SetID           string    `json:"setId" yaml:"setId"`
	Side            Side      `json:"side" yaml:"side"`
	Reps            *int      `json:"reps,omitempty" yaml:"reps,omitempty"`
	Duration        *int      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Weight          float64   `json:"weight" yaml:"weight"`
	RPE             *float64  `json:"rpe,omitempty" yaml:"rpe,omitempty"`
	RIR             *int      `json:"rir,omitempty" yaml:"rir,omitempty"`
	MachineBrand    string    `json:"machineBrand,omitempty" yaml:"machineBrand,omitempty"`
	IsChangeOfPlans bool      `json:"isChangeOfPlans" yaml:"isChangeOfPlans"`
	Note            string    `json:"note,omitempty" yaml:"note,omitempty"`
	CompletedAt     time.Time `json:"completedAt" yaml:"completedAt"`
}

func (r CompletedSetRecord) AchievedReps() int {
	if r.Reps == nil {
		return 0
	}
	return *r.Reps
}

func (r CompletedSetRecord) String() string {
	if r.Reps != nil {
		return fmt.Sprintf("%s/%s[%s] %g x %d", r.ExerciseID, r.SetID, r.Side, r.Weight, *r.Reps)
	}
	if r.Duration != nil {
		return fmt.Sprintf("%s/%s[%s] %g for %ds", r.ExerciseID, r.SetID, r.Side, r.Weight, *r.Duration)
	}
	return fmt.Sprintf("%s/%s[%s] %g", r.ExerciseID, r.SetID, r.Side, r.Weight)
}

// DynamicWeight holds the auto-discovered working loads of an exercise.
// Technical never exceeds Consolidated when both are set.
type DynamicWeight struct {
	Consolidated *float64 `json:"consolidated,omitempty" yaml:"consolidated,omitempty"`
	Technical    *float64 `json:"technical,omitempty" yaml:"technical,omitempty"`
}

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

func (u WeightUnit) IsValid() bool {
	return u == UnitKg || u == UnitLbs
}

type Settings struct {
	WeightUnit    WeightUnit `json:"weightUnit" yaml:"weightUnit"`
	BarbellWeight float64    `json:"barbellWeight" yaml:"barbellWeight"`
	Plates        []float64  `json:"plates,omitempty" yaml:"plates,omitempty"`
}
