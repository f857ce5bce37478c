package main

import (
	"context"
	"fmt"

	"github.com/2beens/liftload/internal/records"
	"github.com/2beens/liftload/internal/repdebt"
	"github.com/2beens/liftload/internal/session"
	"github.com/2beens/liftload/internal/telemetry/metrics"
	"github.com/2beens/liftload/internal/workspace"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// openSession builds a session over the workspace plan, with the rep debt
// ledger rebuilt from the whole history.
func (a *app) openSession(ctx context.Context, dir string) (*workspace.Workspace, *session.Session, error) {
	ws := workspace.New(a.fs, dir, a.metrics)

	cat, err := ws.LoadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	plan, err := ws.LoadPlan(ctx)
	if err != nil {
		return nil, nil, err
	}
	hist, err := ws.LoadHistory(ctx)
	if err != nil {
		return nil, nil, err
	}

	s, err := session.New(plan.Exercises, session.Deps{
		Catalog:  cat,
		History:  hist,
		Records:  records.NewTracker(hist, records.WithUnknownBrandRatio(a.cfg.UnknownBrandRatio)),
		Ledger:   repdebt.Rebuild(hist.Exercises()),
		Settings: plan.MergeSettings(a.cfg.Settings()),
		Metrics:  a.metrics,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("new session: %w", err)
	}
	log.Debugf("session opened on %s: %d past sessions", dir, hist.Len())
	return ws, s, nil
}

func (a *app) suggestCmd() *cobra.Command {
	var dir, exerciseID, setID, brand string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the prefill of a set of the workspace plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := a.openSession(cmd.Context(), dir)
			if err != nil {
				return err
			}

			if exerciseID != "" {
				if setID == "" {
					setID, err = firstSet(s, exerciseID)
					if err != nil {
						return err
					}
				}
				if err := s.Select(exerciseID, setID); err != nil {
					return err
				}
			}

			prefill, err := s.Prefill(brand)
			if err != nil {
				return err
			}
			return a.printJSON(prefill)
		},
	}
	cmd.Flags().StringVar(&dir, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&exerciseID, "exercise", "", "plan exercise id, defaults to the first set of the plan")
	cmd.Flags().StringVar(&setID, "set", "", "set id, defaults to the first set of the exercise")
	cmd.Flags().StringVar(&brand, "brand", "", "equipment brand")
	return cmd
}

func firstSet(s *session.Session, exerciseID string) (string, error) {
	for _, ex := range s.Plan() {
		if ex.ID == exerciseID && len(ex.Sets) > 0 {
			return ex.Sets[0].ID, nil
		}
	}
	return "", fmt.Errorf("exercise %s: %w", exerciseID, session.ErrUnknownSet)
}

func (a *app) replayCmd() *cobra.Command {
	var dir, logFile string
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a recorded session log through the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, s, err := a.openSession(ctx, dir)
			if err != nil {
				return err
			}
			commits, err := ws.LoadSessionLog(ctx, logFile)
			if err != nil {
				return err
			}

			for _, step := range workspace.Replay(ctx, s, commits) {
				if step.Err != nil {
					fmt.Fprintf(a.out, "#%d rejected: %s\n", step.Index, step.Err)
					continue
				}
				fmt.Fprintf(a.out, "#%d %s\n", step.Index, step.Outcome.Record)
				if step.Outcome.Debt != nil {
					fmt.Fprintf(a.out, "   rep debt %s: %s\n", step.Outcome.Debt.Key, repdebt.Format(step.Outcome.Debt.Total))
				}
				for _, sig := range step.Outcome.Signals {
					fmt.Fprintf(a.out, "   %s\n", describe(sig))
				}
			}

			if err := a.printJSON(s.Snapshot()); err != nil {
				return err
			}
			if showMetrics {
				return a.printMetrics()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&logFile, "log", "", "session log file, relative to the workspace")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print engine metrics after the replay")
	_ = cmd.MarkFlagRequired("log")
	return cmd
}

func describe(sig session.Signal) string {
	switch sig.Kind {
	case session.SignalNewPersonalRecord:
		return fmt.Sprintf("new personal record: e1RM %.1f at %d reps", sig.E1RM, sig.Reps)
	case session.SignalStartRest:
		if sig.BetweenSides {
			return fmt.Sprintf("rest %s before the other side", sig.Rest)
		}
		return fmt.Sprintf("rest %s", sig.Rest)
	default:
		return sig.Kind.String()
	}
}

func (a *app) printMetrics() error {
	samples, err := metrics.Snapshot(a.registry, a.cfg.MetricsNamespace+"_")
	if err != nil {
		return err
	}
	for _, sample := range samples {
		fmt.Fprintf(a.out, "%s %v %g\n", sample.Name, sample.Labels, sample.Value)
	}
	return nil
}
