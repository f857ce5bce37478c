// Package repdebt keeps the rep debt ledger: per exercise and per target
// context, the running sum of completed reps minus target reps.
//
// Debt is a coaching signal only, it never blocks logging.
package repdebt

import (
	"fmt"
	"iter"
	"maps"
	"strconv"
	"strings"

	"github.com/2beens/liftload/internal/workout"
)

// ContextKey buckets sets that share the same nominal target. It is built
// from the rep count and the intensity mode only, so RPE 7 and RPE 9 sets of
// the same rep count share a bucket.
type ContextKey string

func KeyFor(targetReps int, mode workout.IntensityMode) ContextKey {
	return ContextKey(fmt.Sprintf("%d:%s", targetReps, mode))
}

func KeyForTarget(target workout.TargetSet) ContextKey {
	return KeyFor(target.TargetReps, target.IntensityMode)
}

// Snapshot is a plain copy of the ledger, exercise key -> context key -> debt.
type Snapshot map[string]map[ContextKey]int

type Ledger struct {
	entries map[string]map[ContextKey]int
}

func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]map[ContextKey]int),
	}
}

func (l *Ledger) DebtFor(exerciseKey string, key ContextKey) int {
	return l.entries[exerciseKey][key]
}

// Record adds delta to the running debt. Entries are only ever incremented.
func (l *Ledger) Record(exerciseKey string, key ContextKey, delta int) {
	byContext, ok := l.entries[exerciseKey]
	if !ok {
		byContext = make(map[ContextKey]int)
		l.entries[exerciseKey] = byContext
	}
	byContext[key] += delta
}

// RecordSet records the debt of a set logged against its target. Sets without
// a rep target and change of plans sets do not count.
func (l *Ledger) RecordSet(exerciseKey string, record workout.CompletedSetRecord, target workout.TargetSet) (ContextKey, int, bool) {
	if target.TargetReps <= 0 || record.Reps == nil || record.IsChangeOfPlans {
		return "", 0, false
	}
	key := KeyForTarget(target)
	delta := *record.Reps - target.TargetReps
	l.Record(exerciseKey, key, delta)
	return key, delta, true
}

func (l *Ledger) Snapshot() Snapshot {
	snapshot := make(Snapshot, len(l.entries))
	for exerciseKey, byContext := range l.entries {
		snapshot[exerciseKey] = maps.Clone(byContext)
	}
	return snapshot
}

func Restore(snapshot Snapshot) *Ledger {
	l := NewLedger()
	for exerciseKey, byContext := range snapshot {
		l.entries[exerciseKey] = maps.Clone(byContext)
	}
	return l
}

// Rebuild recomputes a ledger in bulk from logged exercises.
func Rebuild(exercises iter.Seq[workout.LoggedExercise]) *Ledger {
	l := NewLedger()
	for ex := range exercises {
		exerciseKey := ex.Ref().Key()
		for _, set := range ex.Sets {
			l.RecordSet(exerciseKey, set.Record, set.Target)
		}
	}
	return l
}

// Format renders a debt as a coaching label: "+3", "-2" or "0".
func Format(debt int) string {
	if debt > 0 {
		return "+" + strconv.Itoa(debt)
	}
	return strconv.Itoa(debt)
}

func (k ContextKey) String() string {
	reps, mode, _ := strings.Cut(string(k), ":")
	return fmt.Sprintf("%s reps @ %s", reps, mode)
}
