package workout

import "time"

// LoggedSet is a completed set together with the target it was logged against.
type LoggedSet struct {
	Record CompletedSetRecord `json:"record" yaml:"record"`
	Target TargetSet          `json:"target" yaml:"target"`
}

type LoggedExercise struct {
	CatalogID string      `json:"catalogId,omitempty" yaml:"catalogId,omitempty"`
	Name      string      `json:"name" yaml:"name"`
	Sets      []LoggedSet `json:"sets" yaml:"sets"`
}

func (le LoggedExercise) Ref() ExerciseRef {
	return ExerciseRef{
		CatalogID: le.CatalogID,
		Name:      le.Name,
	}
}

// LoggedSession is one past, completed training session.
type LoggedSession struct {
	ID        string           `json:"id" yaml:"id"`
	Date      time.Time        `json:"date" yaml:"date"`
	Exercises []LoggedExercise `json:"exercises" yaml:"exercises"`
}
