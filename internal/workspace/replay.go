package workspace

import (
	"context"
	"fmt"

	"github.com/2beens/liftload/internal/session"
	"github.com/2beens/liftload/internal/telemetry/tracing"
	"github.com/2beens/liftload/internal/workout"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Commit is one recorded form submission of a session log. When Exercise and
// Set are given the cursor is moved there first.
type Commit struct {
	Exercise      string       `yaml:"exercise,omitempty"`
	Set           string       `yaml:"set,omitempty"`
	Weight        string       `yaml:"weight"`
	Reps          string       `yaml:"reps,omitempty"`
	Duration      string       `yaml:"duration,omitempty"`
	RPE           string       `yaml:"rpe,omitempty"`
	RIR           string       `yaml:"rir,omitempty"`
	Side          workout.Side `yaml:"side,omitempty"`
	Brand         string       `yaml:"brand,omitempty"`
	ChangeOfPlans bool         `yaml:"changeOfPlans,omitempty"`
	Note          string       `yaml:"note,omitempty"`
}

func (c Commit) Input() session.Input {
	return session.Input{
		Weight:        c.Weight,
		Reps:          c.Reps,
		Duration:      c.Duration,
		RPE:           c.RPE,
		RIR:           c.RIR,
		Side:          c.Side,
		Brand:         c.Brand,
		ChangeOfPlans: c.ChangeOfPlans,
		Note:          c.Note,
	}
}

type sessionLogFile struct {
	Commits []Commit `yaml:"commits"`
}

// LoadSessionLog reads a recorded session log, relative to the workspace.
func (w *Workspace) LoadSessionLog(ctx context.Context, name string) ([]Commit, error) {
	var f sessionLogFile
	if _, err := w.readYAML(ctx, name, false, &f); err != nil {
		return nil, err
	}
	return f.Commits, nil
}

// Step is the result of replaying one commit: an outcome or a rejection.
type Step struct {
	Index   int              `json:"index"`
	Commit  Commit           `json:"-"`
	Outcome *session.Outcome `json:"outcome,omitempty"`
	Err     error            `json:"-"`
}

// Replay feeds the commits to the session in order. Rejected commits do not
// stop the replay, the same way a host re-prompts and carries on.
func Replay(ctx context.Context, s *session.Session, commits []Commit) (steps []Step) {
	_, span := tracing.GlobalTracer.Start(ctx, "workspace.replay")
	defer span.End()
	span.SetAttributes(attribute.Int("commits", len(commits)))

	rejected := 0
	for i, c := range commits {
		step := Step{Index: i, Commit: c}
		if c.Exercise != "" && c.Set != "" {
			if err := s.Select(c.Exercise, c.Set); err != nil {
				step.Err = fmt.Errorf("select %s/%s: %w", c.Exercise, c.Set, err)
			}
		}
		if step.Err == nil {
			outcome, err := s.Commit(c.Input())
			if err != nil {
				step.Err = err
			} else {
				step.Outcome = &outcome
			}
		}
		if step.Err != nil {
			rejected++
			log.Warnf("replay: commit #%d rejected: %s", i, step.Err)
		}
		steps = append(steps, step)
	}

	span.SetAttributes(attribute.Int("rejected", rejected))
	return steps
}
