package session

import (
	"fmt"

	"github.com/2beens/liftload/internal/workout"

	"go.uber.org/multierr"
)

// Plan is the ordered list of exercises of one workout session.
type Plan []workout.ExerciseDefinition

// Validate reports every structural problem of the plan at once.
func (p Plan) Validate() error {
	var err error
	exerciseIDs := make(map[string]struct{}, len(p))
	for i, ex := range p {
		if ex.ID == "" {
			err = multierr.Append(err, fmt.Errorf("exercise #%d: missing id", i))
		} else if _, dup := exerciseIDs[ex.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("exercise %s: duplicate id", ex.ID))
		}
		exerciseIDs[ex.ID] = struct{}{}

		if ex.TrainingMode != "" && !ex.TrainingMode.IsValid() {
			err = multierr.Append(err, fmt.Errorf("exercise %s: invalid training mode %q", ex.ID, ex.TrainingMode))
		}
		if ex.RestTime < 0 || ex.UnilateralRestTime < 0 {
			err = multierr.Append(err, fmt.Errorf("exercise %s: negative rest time", ex.ID))
		}

		setIDs := make(map[string]struct{}, len(ex.Sets))
		for j, set := range ex.Sets {
			if set.ID == "" {
				err = multierr.Append(err, fmt.Errorf("exercise %s, set #%d: missing id", ex.ID, j))
			} else if _, dup := setIDs[set.ID]; dup {
				err = multierr.Append(err, fmt.Errorf("exercise %s, set %s: duplicate id", ex.ID, set.ID))
			}
			setIDs[set.ID] = struct{}{}

			if set.IntensityMode != "" && !set.IntensityMode.IsValid() {
				err = multierr.Append(err, fmt.Errorf("exercise %s, set %s: invalid intensity mode %q", ex.ID, set.ID, set.IntensityMode))
			}
			if set.TargetReps < 0 || set.TargetDuration < 0 {
				err = multierr.Append(err, fmt.Errorf("exercise %s, set %s: negative target", ex.ID, set.ID))
			}
		}
	}
	return err
}

func (p Plan) exercise(exerciseID string) (int, bool) {
	for i := range p {
		if p[i].ID == exerciseID {
			return i, true
		}
	}
	return -1, false
}
