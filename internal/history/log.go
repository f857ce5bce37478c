// Package history holds the workout history the engine reads from: past,
// completed sessions ordered by date. The engine never edits past records.
package history

import (
	"iter"
	"slices"

	"github.com/2beens/liftload/internal/workout"
)

type exerciseLoc struct {
	session  int
	exercise int
}

func compareLoc(a, b exerciseLoc) int {
	if a.session != b.session {
		return a.session - b.session
	}
	return a.exercise - b.exercise
}

// Log is an append-only, date ordered collection of logged sessions.
type Log struct {
	sessions []workout.LoggedSession
	byID     map[string][]exerciseLoc
	byName   map[string][]exerciseLoc
}

func NewLog(sessions ...workout.LoggedSession) *Log {
	l := &Log{
		sessions: slices.Clone(sessions),
	}
	slices.SortStableFunc(l.sessions, func(a, b workout.LoggedSession) int {
		return a.Date.Compare(b.Date)
	})
	l.reindex()
	return l
}

// Append adds a finished session, keeping the log ordered by date.
func (l *Log) Append(session workout.LoggedSession) {
	pos := len(l.sessions)
	for pos > 0 && l.sessions[pos-1].Date.After(session.Date) {
		pos--
	}
	l.sessions = slices.Insert(l.sessions, pos, session)
	l.reindex()
}

func (l *Log) reindex() {
	l.byID = make(map[string][]exerciseLoc)
	l.byName = make(map[string][]exerciseLoc)
	for si, session := range l.sessions {
		for ei, ex := range session.Exercises {
			loc := exerciseLoc{session: si, exercise: ei}
			if ex.CatalogID != "" {
				l.byID[ex.CatalogID] = append(l.byID[ex.CatalogID], loc)
			}
			if key := workout.NameKey(ex.Name); key != "" {
				l.byName[key] = append(l.byName[key], loc)
			}
		}
	}
}

func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.sessions)
}

// Sessions returns the logged sessions, oldest first.
func (l *Log) Sessions() []workout.LoggedSession {
	if l == nil {
		return nil
	}
	return slices.Clone(l.sessions)
}

// locate resolves the logged exercises matching ref. With a catalog id, exercises
// logged under that id match, plus same-name exercises logged without any id;
// a different catalog id never matches by name. Without an id, name decides.
func (l *Log) locate(ref workout.ExerciseRef) []exerciseLoc {
	nameLocs := l.byName[workout.NameKey(ref.Name)]
	if ref.CatalogID == "" {
		return nameLocs
	}

	locs := slices.Clone(l.byID[ref.CatalogID])
	for _, loc := range nameLocs {
		if l.sessions[loc.session].Exercises[loc.exercise].CatalogID == "" {
			locs = append(locs, loc)
		}
	}
	slices.SortFunc(locs, compareLoc)
	return locs
}

// SetsFor returns every logged set of the exercise, oldest first.
func (l *Log) SetsFor(ref workout.ExerciseRef) []workout.LoggedSet {
	if l == nil {
		return nil
	}
	var sets []workout.LoggedSet
	for _, loc := range l.locate(ref) {
		sets = append(sets, l.sessions[loc.session].Exercises[loc.exercise].Sets...)
	}
	return sets
}

// LastRecord returns the most recently logged record of the exercise.
func (l *Log) LastRecord(ref workout.ExerciseRef) (workout.CompletedSetRecord, bool) {
	sets := l.SetsFor(ref)
	if len(sets) == 0 {
		return workout.CompletedSetRecord{}, false
	}
	return sets[len(sets)-1].Record, true
}

// Exercises yields every logged exercise, oldest session first.
func (l *Log) Exercises() iter.Seq[workout.LoggedExercise] {
	return func(yield func(workout.LoggedExercise) bool) {
		if l == nil {
			return
		}
		for _, session := range l.sessions {
			for _, ex := range session.Exercises {
				if !yield(ex) {
					return
				}
			}
		}
	}
}
