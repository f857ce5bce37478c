package session

import (
	"github.com/2beens/liftload/internal/plates"
	"github.com/2beens/liftload/internal/repdebt"
	"github.com/2beens/liftload/internal/suggest"
	"github.com/2beens/liftload/internal/workout"
)

// PrefillSource can be one of:
//   - suggestion
//   - session
//   - history
//   - none
type PrefillSource string

const (
	PrefillSuggestion PrefillSource = "suggestion"
	PrefillSession    PrefillSource = "session"
	PrefillHistory    PrefillSource = "history"
	PrefillNone       PrefillSource = "none"
)

// Prefill is what the host puts in the form of the active set.
type Prefill struct {
	ExerciseID string                `json:"exerciseId"`
	SetID      string                `json:"setId"`
	Side       workout.Side          `json:"side"`
	Weight     float64               `json:"weight"`
	Source     PrefillSource         `json:"source"`
	Suggestion *suggest.Suggestion   `json:"suggestion,omitempty"`
	Dynamic    workout.DynamicWeight `json:"dynamic"`
	RepDebt    int                   `json:"repDebt"`
	DebtLabel  string                `json:"debtLabel"`
	Plates     *plates.Breakdown     `json:"plates,omitempty"`
}

// Prefill proposes the weight for the active set on the given brand: the
// suggestion engine first, then the last weight used for the exercise in
// this session, then the last logged weight in history.
func (s *Session) Prefill(brand string) (Prefill, error) {
	if s.complete {
		return Prefill{}, ErrSessionComplete
	}

	ex := s.plan[s.pos.exercise]
	target := ex.Sets[s.pos.set]
	debt := s.ledger.DebtFor(ex.Ref().Key(), repdebt.KeyForTarget(target))
	p := Prefill{
		ExerciseID: ex.ID,
		SetID:      target.ID,
		Side:       s.nextSide(ex),
		Source:     PrefillNone,
		Dynamic:    s.dynamic[ex.ID],
		RepDebt:    debt,
		DebtLabel:  repdebt.Format(debt),
	}

	suggestion, ok := suggest.Suggest(suggest.Request{
		Exercise: ex,
		Entry:    s.entry(ex),
		SetIndex: s.pos.set,
		Dynamic:  s.dynamic[ex.ID],
		Settings: s.deps.Settings,
		Brand:    brand,
	})
	switch {
	case ok:
		p.Weight = suggestion.Weight
		p.Source = PrefillSuggestion
		p.Suggestion = &suggestion
		if s.deps.Metrics != nil {
			s.deps.Metrics.HistSuggestedLoad.Observe(suggestion.Weight)
		}
	case s.lastSessionWeight(ex.ID, &p.Weight):
		p.Source = PrefillSession
	case s.deps.History != nil:
		if last, found := s.deps.History.LastRecord(ex.Ref()); found {
			p.Weight = last.Weight
			p.Source = PrefillHistory
		}
	}

	if s.deps.Settings.BarbellWeight > 0 && p.Weight > s.deps.Settings.BarbellWeight {
		breakdown := plates.ForSettings(p.Weight, s.deps.Settings)
		p.Plates = &breakdown
	}
	return p, nil
}

func (s *Session) nextSide(ex workout.ExerciseDefinition) workout.Side {
	if !ex.IsUnilateral {
		return workout.SideNone
	}
	if s.loggedSide.IsPending() {
		return workout.SideRight
	}
	return workout.SideLeft
}

func (s *Session) lastSessionWeight(exerciseID string, weight *float64) bool {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].ExerciseID == exerciseID {
			*weight = s.records[i].Weight
			return true
		}
	}
	return false
}
