package main

import (
	"fmt"

	"github.com/2beens/liftload/internal/loadmath"
	"github.com/2beens/liftload/internal/plates"
	"github.com/2beens/liftload/internal/workout"

	"github.com/spf13/cobra"
)

const maxTableReps = 12

func (a *app) e1rmCmd() *cobra.Command {
	var weight float64
	var reps int

	cmd := &cobra.Command{
		Use:   "e1rm",
		Short: "Estimate the 1RM of a set and print the load table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if weight <= 0 || reps <= 0 {
				return fmt.Errorf("weight and reps must be positive")
			}
			unit := a.cfg.WeightUnit
			e1rm := loadmath.Estimate1RM(weight, reps)
			if e1rm <= 0 {
				return fmt.Errorf("no estimate for %d reps", reps)
			}

			fmt.Fprintf(a.out, "e1RM: %.2f %s\n", e1rm, unit)
			for r := 1; r <= maxTableReps; r++ {
				load := loadmath.Quantize(loadmath.LoadForReps(e1rm, r), unit)
				fmt.Fprintf(a.out, "%2d reps: %g %s\n", r, load, unit)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "lifted weight")
	cmd.Flags().IntVar(&reps, "reps", 0, "completed reps")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("reps")
	return cmd
}

func (a *app) platesCmd() *cobra.Command {
	var total, bar float64

	cmd := &cobra.Command{
		Use:   "plates",
		Short: "Split a barbell load into plates per side",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := a.cfg.Settings()
			if cmd.Flags().Changed("bar") {
				settings.BarbellWeight = bar
			}

			breakdown := plates.ForSettings(total, settings)
			fmt.Fprintf(a.out, "per side: %s\n", breakdown)
			if breakdown.Remainder > 0 {
				fmt.Fprintf(a.out, "remainder: %g %s\n", breakdown.Remainder, unitOrKg(settings.WeightUnit))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "total load including the bar")
	cmd.Flags().Float64Var(&bar, "bar", 0, "barbell weight, overrides the config")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

func unitOrKg(unit workout.WeightUnit) workout.WeightUnit {
	if unit == "" {
		return workout.UnitKg
	}
	return unit
}
