package workout

import (
	"fmt"
	"strings"
)

// TrainingMode can be one of:
//   - reps
//   - time
//   - percent
//   - distance
//   - custom
type TrainingMode string

const (
	TrainingModeReps     TrainingMode = "reps"
	TrainingModeTime     TrainingMode = "time"
	TrainingModePercent  TrainingMode = "percent"
	TrainingModeDistance TrainingMode = "distance"
	TrainingModeCustom   TrainingMode = "custom"
)

func (tm TrainingMode) String() string {
	return string(tm)
}

func (tm TrainingMode) IsValid() bool {
	switch tm {
	case TrainingModeReps,
		TrainingModeTime,
		TrainingModePercent,
		TrainingModeDistance,
		TrainingModeCustom:
		return true
	default:
		return false
	}
}

// IsRepBased reports whether sets of this mode are prescribed as a rep count.
// An empty mode is treated as reps.
func (tm TrainingMode) IsRepBased() bool {
	return tm == "" || tm == TrainingModeReps || tm == TrainingModePercent
}

type BrandEquivalency struct {
	Brand          string   `json:"brand" yaml:"brand"`
	Ratio          *float64 `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	BestRecordedPR *float64 `json:"bestRecordedPR,omitempty" yaml:"bestRecordedPR,omitempty"`
}

// ExerciseRef identifies an exercise across sessions: by the stable catalog id
// when there is one, by name otherwise.
type ExerciseRef struct {
	CatalogID string `json:"catalogId,omitempty" yaml:"catalogId,omitempty"`
	Name      string `json:"name" yaml:"name"`
}

// Key is the stable identity used to bucket per-exercise state across sessions.
func (r ExerciseRef) Key() string {
	if r.CatalogID != "" {
		return r.CatalogID
	}
	return "name:" + NameKey(r.Name)
}

func (r ExerciseRef) String() string {
	if r.CatalogID != "" {
		return fmt.Sprintf("%s (%s)", r.Name, r.CatalogID)
	}
	return r.Name
}

// ExerciseDefinition is a single exercise instance within a session plan.
// ID is the plan-instance id, CatalogID the optional database id.
type ExerciseDefinition struct {
	ID           string             `json:"id" yaml:"id"`
	CatalogID    string             `json:"catalogId,omitempty" yaml:"catalogId,omitempty"`
	Name         string             `json:"name" yaml:"name"`
	Reference1RM *float64           `json:"reference1RM,omitempty" yaml:"reference1RM,omitempty"`
	Brands       []BrandEquivalency `json:"brands,omitempty" yaml:"brands,omitempty"`
	IsUnilateral bool               `json:"isUnilateral" yaml:"isUnilateral"`
	// RestTime and UnilateralRestTime are in seconds
	RestTime           int          `json:"restTime" yaml:"restTime"`
	UnilateralRestTime int          `json:"unilateralRestTime,omitempty" yaml:"unilateralRestTime,omitempty"`
	TrainingMode       TrainingMode `json:"trainingMode" yaml:"trainingMode"`
	Sets               []TargetSet  `json:"sets" yaml:"sets"`
}

func (e ExerciseDefinition) Ref() ExerciseRef {
	return ExerciseRef{
		CatalogID: e.CatalogID,
		Name:      e.Name,
	}
}

// SetByID returns the index of the target set with the given id, or -1.
func (e ExerciseDefinition) SetByID(setID string) int {
	for i := range e.Sets {
		if e.Sets[i].ID == setID {
			return i
		}
	}
	return -1
}

// Brand returns the equivalency entry for the given brand, matched case-insensitively.
func (e ExerciseDefinition) Brand(brand string) (BrandEquivalency, bool) {
	return FindBrand(e.Brands, brand)
}

func FindBrand(brands []BrandEquivalency, brand string) (BrandEquivalency, bool) {
	if strings.TrimSpace(brand) == "" {
		return BrandEquivalency{}, false
	}
	key := NameKey(brand)
	for _, b := range brands {
		if NameKey(b.Brand) == key {
			return b, true
		}
	}
	return BrandEquivalency{}, false
}
