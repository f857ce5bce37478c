package session

import (
	"time"

	"github.com/2beens/liftload/internal/repdebt"
	"github.com/2beens/liftload/internal/workout"
)

// SignalKind can be one of:
//   - new_personal_record
//   - start_rest
//   - session_complete
type SignalKind string

const (
	SignalNewPersonalRecord SignalKind = "new_personal_record"
	SignalStartRest         SignalKind = "start_rest"
	SignalSessionComplete   SignalKind = "session_complete"
)

func (k SignalKind) String() string {
	return string(k)
}

// Signal is a request from the engine to the host. Rest is set for
// start_rest, E1RM and Reps for new_personal_record.
type Signal struct {
	Kind       SignalKind    `json:"kind"`
	ExerciseID string        `json:"exerciseId,omitempty"`
	E1RM       float64       `json:"e1RM,omitempty"`
	Reps       int           `json:"reps,omitempty"`
	Rest       time.Duration `json:"rest,omitempty"`
	// BetweenSides marks the rest between the left and the right side
	BetweenSides bool `json:"betweenSides,omitempty"`
}

// DebtUpdate is the rep debt change caused by a finalized set.
type DebtUpdate struct {
	Key   repdebt.ContextKey `json:"key"`
	Delta int                `json:"delta"`
	Total int                `json:"total"`
}

type Outcome struct {
	Record    workout.CompletedSetRecord `json:"record"`
	Finalized bool                       `json:"finalized"`
	Debt      *DebtUpdate                `json:"debt,omitempty"`
	Signals   []Signal                   `json:"signals,omitempty"`
	Cursor    Cursor                     `json:"cursor"`
}

// Has reports whether the outcome carries a signal of the given kind.
func (o Outcome) Has(kind SignalKind) bool {
	for _, s := range o.Signals {
		if s.Kind == kind {
			return true
		}
	}
	return false
}
