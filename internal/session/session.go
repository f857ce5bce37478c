// Package session drives one in-progress workout: it walks the plan set by
// set, validates commits, and runs the post-commit side effects (rep debt,
// dynamic weights, personal records, rest requests).
//
// A Session is owned by a single caller and is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/liftload/internal/catalog"
	"github.com/2beens/liftload/internal/history"
	"github.com/2beens/liftload/internal/loadmath"
	"github.com/2beens/liftload/internal/records"
	"github.com/2beens/liftload/internal/repdebt"
	"github.com/2beens/liftload/internal/telemetry/metrics"
	"github.com/2beens/liftload/internal/workout"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const technicalWeightFactor = 0.8

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=session_test

type catalogLookup interface {
	Lookup(ref workout.ExerciseRef) (*catalog.Entry, bool)
}

type historyReader interface {
	SetsFor(ref workout.ExerciseRef) []workout.LoggedSet
	LastRecord(ref workout.ExerciseRef) (workout.CompletedSetRecord, bool)
}

type prTracker interface {
	FindPR(ref workout.ExerciseRef, brands []workout.BrandEquivalency, currentBrand string) (records.PersonalRecord, bool)
	Evaluate(previousBest, weight float64, reps int) (float64, bool)
}

// Deps are the read-only collaborators of a session. Only Settings is
// required; Records defaults to a tracker over History.
type Deps struct {
	Catalog  catalogLookup
	History  historyReader
	Records  prTracker
	Ledger   *repdebt.Ledger
	Settings workout.Settings
	Metrics  *metrics.Manager
}

// Cursor points at the set awaiting input. LoggedSide is left while the
// right side of a unilateral set is still owed.
type Cursor struct {
	ExerciseID string              `json:"exerciseId,omitempty" yaml:"exerciseId,omitempty"`
	SetID      string              `json:"setId,omitempty" yaml:"setId,omitempty"`
	LoggedSide workout.PendingSide `json:"loggedSide" yaml:"loggedSide"`
	Complete   bool                `json:"complete" yaml:"complete"`
}

func (c Cursor) String() string {
	if c.Complete {
		return "complete"
	}
	if c.LoggedSide.IsPending() {
		return fmt.Sprintf("%s/%s (right side)", c.ExerciseID, c.SetID)
	}
	return c.ExerciseID + "/" + c.SetID
}

type position struct {
	exercise int
	set      int
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

type Session struct {
	plan Plan
	deps Deps

	pos        position
	loggedSide workout.PendingSide
	complete   bool

	dynamic map[string]workout.DynamicWeight
	ledger  *repdebt.Ledger
	records []workout.CompletedSetRecord
	logged  map[position]bool

	now   func() time.Time
	newID func() string
}

func New(plan Plan, deps Deps, opts ...Option) (*Session, error) {
	s, err := newSession(plan, deps, opts...)
	if err != nil {
		return nil, err
	}
	if deps.Metrics != nil {
		deps.Metrics.CounterSessions.WithLabelValues("started").Inc()
	}
	log.Debugf("session started: %d exercises, cursor %s", len(s.plan), s.Cursor())
	return s, nil
}

func newSession(plan Plan, deps Deps, opts ...Option) (*Session, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}
	if deps.Records == nil {
		if deps.History != nil {
			deps.Records = records.NewTracker(deps.History)
		} else {
			deps.Records = records.NewTracker(history.NewLog())
		}
	}

	s := &Session{
		plan:       slices.Clone(plan),
		deps:       deps,
		loggedSide: workout.PendingNone,
		dynamic:    make(map[string]workout.DynamicWeight, len(plan)),
		ledger:     deps.Ledger,
		logged:     make(map[position]bool),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	if s.ledger == nil {
		s.ledger = repdebt.NewLedger()
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, ex := range s.plan {
		s.dynamic[ex.ID] = seedDynamicWeight(ex)
	}

	next, ok := s.nextUnlogged(position{exercise: 0, set: -1})
	if !ok {
		s.complete = true
	} else {
		s.pos = next
	}
	return s, nil
}

// seedDynamicWeight takes the first consolidated and technical weights carried
// by the planned sets.
func seedDynamicWeight(ex workout.ExerciseDefinition) workout.DynamicWeight {
	var dw workout.DynamicWeight
	for _, set := range ex.Sets {
		if dw.Consolidated == nil && set.ConsolidatedWeight != nil {
			v := *set.ConsolidatedWeight
			dw.Consolidated = &v
		}
		if dw.Technical == nil && set.TechnicalWeight != nil {
			v := *set.TechnicalWeight
			dw.Technical = &v
		}
	}
	return dw
}

func (s *Session) Cursor() Cursor {
	if s.complete {
		return Cursor{LoggedSide: workout.PendingNone, Complete: true}
	}
	ex := s.plan[s.pos.exercise]
	return Cursor{
		ExerciseID: ex.ID,
		SetID:      ex.Sets[s.pos.set].ID,
		LoggedSide: s.loggedSide,
	}
}

// Plan returns a copy of the plan the session walks.
func (s *Session) Plan() Plan {
	return slices.Clone(s.plan)
}

func (s *Session) Complete() bool {
	return s.complete
}

// Records returns the records committed so far, in commit order.
func (s *Session) Records() []workout.CompletedSetRecord {
	return slices.Clone(s.records)
}

// DynamicWeight returns the current dynamic weights of a plan exercise.
func (s *Session) DynamicWeight(exerciseID string) workout.DynamicWeight {
	return s.dynamic[exerciseID]
}

// RepDebt returns the debt accumulated for the exercise at the given target.
func (s *Session) RepDebt(exerciseID string, target workout.TargetSet) int {
	i, ok := s.plan.exercise(exerciseID)
	if !ok {
		return 0
	}
	return s.ledger.DebtFor(s.plan[i].Ref().Key(), repdebt.KeyForTarget(target))
}

// Commit logs one set, or one side of a unilateral set. Invalid input is
// rejected with an *InvalidInputError and leaves the session untouched.
func (s *Session) Commit(in Input) (Outcome, error) {
	if s.complete {
		return Outcome{}, ErrSessionComplete
	}

	ex := s.plan[s.pos.exercise]
	target := ex.Sets[s.pos.set]

	parsed, err := parseInput(in)
	if err != nil {
		s.rejected(err)
		return Outcome{}, err
	}
	side, err := s.resolveSide(ex, in.Side)
	if err != nil {
		s.rejected(err)
		return Outcome{}, err
	}

	record := workout.CompletedSetRecord{
		ID:              s.newID(),
		ExerciseID:      ex.ID,
		SetID:           target.ID,
		Side:            side,
		Reps:            parsed.reps,
		Duration:        parsed.duration,
		Weight:          parsed.weight,
		RPE:             parsed.rpe,
		RIR:             parsed.rir,
		MachineBrand:    strings.TrimSpace(in.Brand),
		IsChangeOfPlans: in.ChangeOfPlans,
		Note:            strings.TrimSpace(in.Note),
		CompletedAt:     s.now(),
	}
	s.records = append(s.records, record)
	if s.deps.Metrics != nil {
		s.deps.Metrics.CounterSetsCommitted.WithLabelValues(side.String(), strconv.FormatBool(in.ChangeOfPlans)).Inc()
	}

	outcome := Outcome{Record: record}
	if side == workout.SideLeft {
		s.loggedSide = workout.PendingLeft
		if ex.UnilateralRestTime > 0 {
			outcome.Signals = append(outcome.Signals, s.restSignal(ex.ID, ex.UnilateralRestTime, true))
		}
		outcome.Cursor = s.Cursor()
		log.Debugf("left side logged: %s", record)
		return outcome, nil
	}

	outcome.Finalized = true
	outcome.Debt = s.recordDebt(ex, target, record)
	s.updateDynamicWeight(ex, target, record)
	if sig, ok := s.checkPersonalRecord(ex, record); ok {
		outcome.Signals = append(outcome.Signals, sig)
	}
	if ex.RestTime > 0 {
		outcome.Signals = append(outcome.Signals, s.restSignal(ex.ID, ex.RestTime, false))
	}

	s.logged[s.pos] = true
	s.loggedSide = workout.PendingNone
	if next, ok := s.nextUnlogged(s.pos); ok {
		s.pos = next
	} else {
		s.complete = true
		outcome.Signals = append(outcome.Signals, Signal{Kind: SignalSessionComplete})
		if s.deps.Metrics != nil {
			s.deps.Metrics.CounterSessions.WithLabelValues("completed").Inc()
		}
		log.Debug("session complete")
	}

	outcome.Cursor = s.Cursor()
	log.Debugf("set finalized: %s, cursor %s", record, outcome.Cursor)
	return outcome, nil
}

// resolveSide checks the committed side against the unilateral phase of the
// active set: left first, then right.
func (s *Session) resolveSide(ex workout.ExerciseDefinition, side workout.Side) (workout.Side, error) {
	if !ex.IsUnilateral {
		if side != "" && side != workout.SideNone {
			return "", invalid("side", string(side), "exercise is not unilateral")
		}
		return workout.SideNone, nil
	}

	switch side {
	case workout.SideLeft:
		if s.loggedSide.IsPending() {
			return "", invalid("side", string(side), "left side already logged, right side expected")
		}
	case workout.SideRight:
		if !s.loggedSide.IsPending() {
			return "", invalid("side", string(side), "left side must be logged first")
		}
	default:
		return "", invalid("side", string(side), "unilateral exercise needs left or right")
	}
	return side, nil
}

func (s *Session) rejected(err error) {
	field := "unknown"
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		field = ie.Field
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.CounterInvalidInputs.WithLabelValues(field).Inc()
	}
	log.Debugf("commit rejected at %s: %s", s.Cursor(), err)
}

func (s *Session) recordDebt(ex workout.ExerciseDefinition, target workout.TargetSet, record workout.CompletedSetRecord) *DebtUpdate {
	exerciseKey := ex.Ref().Key()
	key, delta, ok := s.ledger.RecordSet(exerciseKey, record, target)
	if !ok {
		return nil
	}
	total := s.ledger.DebtFor(exerciseKey, key)
	if s.deps.Metrics != nil {
		s.deps.Metrics.GaugeRepDebt.WithLabelValues(exerciseKey, string(key)).Set(float64(total))
	}
	return &DebtUpdate{Key: key, Delta: delta, Total: total}
}

// updateDynamicWeight promotes the achieved weight to consolidated when the
// rep target was met with more weight than the current consolidated one.
func (s *Session) updateDynamicWeight(ex workout.ExerciseDefinition, target workout.TargetSet, record workout.CompletedSetRecord) {
	if record.IsChangeOfPlans || !ex.TrainingMode.IsRepBased() {
		return
	}
	if target.TargetReps <= 0 || record.Reps == nil || *record.Reps < target.TargetReps || record.Weight <= 0 {
		return
	}

	current := s.dynamic[ex.ID]
	if current.Consolidated != nil && record.Weight <= *current.Consolidated {
		return
	}

	consolidated := record.Weight
	// rounding up can pass a light consolidated weight, e.g. 0.8 kg quantizes to 1.25
	technical := min(loadmath.Quantize(consolidated*technicalWeightFactor, s.deps.Settings.WeightUnit), consolidated)
	s.dynamic[ex.ID] = workout.DynamicWeight{
		Consolidated: &consolidated,
		Technical:    &technical,
	}
	log.Debugf("dynamic weight of %s: consolidated %g, technical %g", ex.ID, consolidated, technical)
}

func (s *Session) entry(ex workout.ExerciseDefinition) *catalog.Entry {
	if s.deps.Catalog == nil {
		return nil
	}
	entry, ok := s.deps.Catalog.Lookup(ex.Ref())
	if !ok {
		return nil
	}
	return entry
}

func (s *Session) brands(ex workout.ExerciseDefinition) []workout.BrandEquivalency {
	if entry := s.entry(ex); entry != nil && len(entry.Brands) > 0 {
		return entry.Brands
	}
	return ex.Brands
}

// previousBest is the best known e1RM for the exercise on the scale of brand:
// history, the recorded PR of the brand (catalog brands first, plan brands
// otherwise), and sets already finalized in this session on the same brand.
func (s *Session) previousBest(ex workout.ExerciseDefinition, brand string) float64 {
	var best float64
	if pr, ok := s.deps.Records.FindPR(ex.Ref(), s.brands(ex), brand); ok {
		best = pr.BestE1RM
	}
	if b, ok := workout.FindBrand(s.brands(ex), brand); ok && b.BestRecordedPR != nil && *b.BestRecordedPR > best {
		best = *b.BestRecordedPR
	}

	brandKey := workout.NameKey(brand)
	for _, r := range s.records {
		if r.ExerciseID != ex.ID || r.Side == workout.SideLeft || workout.NameKey(r.MachineBrand) != brandKey {
			continue
		}
		if e1rm := loadmath.Estimate1RM(r.Weight, r.AchievedReps()); e1rm > best {
			best = e1rm
		}
	}
	return best
}

func (s *Session) checkPersonalRecord(ex workout.ExerciseDefinition, record workout.CompletedSetRecord) (Signal, bool) {
	reps := record.AchievedReps()
	if reps <= 0 || record.Weight <= 0 {
		return Signal{}, false
	}

	// the record was already appended; compare against everything before it
	committed := s.records
	s.records = committed[:len(committed)-1]
	best := s.previousBest(ex, record.MachineBrand)
	s.records = committed

	e1rm, isPR := s.deps.Records.Evaluate(best, record.Weight, reps)
	if !isPR {
		return Signal{}, false
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.CounterPersonalRecord.Inc()
	}
	log.Infof("new personal record on %s: %s (e1RM %.1f, previous %.1f)", ex.Name, records.FormatWeightReps(record.Weight, reps), e1rm, best)
	return Signal{
		Kind:       SignalNewPersonalRecord,
		ExerciseID: ex.ID,
		E1RM:       e1rm,
		Reps:       reps,
	}, true
}

func (s *Session) restSignal(exerciseID string, seconds int, betweenSides bool) Signal {
	if s.deps.Metrics != nil {
		kind := "set"
		if betweenSides {
			kind = "side"
		}
		s.deps.Metrics.CounterRestRequests.WithLabelValues(kind).Inc()
	}
	return Signal{
		Kind:         SignalStartRest,
		ExerciseID:   exerciseID,
		Rest:         time.Duration(seconds) * time.Second,
		BetweenSides: betweenSides,
	}
}

// nextUnlogged walks the plan forward from after, then wraps around to the
// start, and returns the first set not yet finalized.
func (s *Session) nextUnlogged(after position) (position, bool) {
	var order []position
	for ei, ex := range s.plan {
		for si := range ex.Sets {
			order = append(order, position{exercise: ei, set: si})
		}
	}

	start := 0
	for i, p := range order {
		if p.exercise > after.exercise || (p.exercise == after.exercise && p.set > after.set) {
			start = i
			break
		}
		start = len(order)
	}

	for i := range order {
		p := order[(start+i)%len(order)]
		if !s.logged[p] {
			return p, true
		}
	}
	return position{}, false
}

// Select moves the cursor to another set that is not logged yet. It is
// refused while the right side of a unilateral set is owed.
func (s *Session) Select(exerciseID, setID string) error {
	if s.loggedSide.IsPending() {
		return ErrSidePending
	}
	ei, ok := s.plan.exercise(exerciseID)
	if !ok {
		return fmt.Errorf("exercise %s: %w", exerciseID, ErrUnknownSet)
	}
	si := s.plan[ei].SetByID(setID)
	if si < 0 {
		return fmt.Errorf("set %s/%s: %w", exerciseID, setID, ErrUnknownSet)
	}
	p := position{exercise: ei, set: si}
	if s.logged[p] {
		return fmt.Errorf("set %s/%s: %w", exerciseID, setID, ErrSetLogged)
	}

	s.pos = p
	return nil
}

// State is the resumable snapshot of a session.
type State struct {
	Cursor  Cursor                           `json:"cursor" yaml:"cursor"`
	Dynamic map[string]workout.DynamicWeight `json:"dynamic" yaml:"dynamic"`
	Ledger  repdebt.Snapshot                 `json:"ledger" yaml:"ledger"`
	Records []workout.CompletedSetRecord     `json:"records" yaml:"records"`
	Logged  []SetRef                         `json:"logged" yaml:"logged"`
}

type SetRef struct {
	ExerciseID string `json:"exerciseId" yaml:"exerciseId"`
	SetID      string `json:"setId" yaml:"setId"`
}

func (s *Session) Snapshot() State {
	state := State{
		Cursor:  s.Cursor(),
		Dynamic: maps.Clone(s.dynamic),
		Ledger:  s.ledger.Snapshot(),
		Records: slices.Clone(s.records),
	}
	for ei, ex := range s.plan {
		for si, set := range ex.Sets {
			if s.logged[position{exercise: ei, set: si}] {
				state.Logged = append(state.Logged, SetRef{ExerciseID: ex.ID, SetID: set.ID})
			}
		}
	}
	return state
}

// Restore rebuilds a session for plan from a snapshot taken by Snapshot.
// deps.Ledger is ignored, the ledger comes from the snapshot. A restored
// session is not counted as started again.
func Restore(plan Plan, deps Deps, state State, opts ...Option) (*Session, error) {
	deps.Ledger = repdebt.Restore(state.Ledger)
	s, err := newSession(plan, deps, opts...)
	if err != nil {
		return nil, err
	}

	for _, ref := range state.Logged {
		p, err := s.locate(ref.ExerciseID, ref.SetID)
		if err != nil {
			return nil, fmt.Errorf("restore logged set: %w", err)
		}
		s.logged[p] = true
	}
	for id, dw := range state.Dynamic {
		s.dynamic[id] = dw
	}
	s.records = slices.Clone(state.Records)

	if state.Cursor.Complete {
		s.complete = true
		s.loggedSide = workout.PendingNone
		return s, nil
	}
	p, err := s.locate(state.Cursor.ExerciseID, state.Cursor.SetID)
	if err != nil {
		return nil, fmt.Errorf("restore cursor: %w", err)
	}
	side := state.Cursor.LoggedSide
	switch side {
	case "", workout.PendingNone:
		side = workout.PendingNone
	case workout.PendingLeft:
		if !s.plan[p.exercise].IsUnilateral {
			return nil, fmt.Errorf("restore cursor %s/%s: %w", state.Cursor.ExerciseID, state.Cursor.SetID, invalid("side", string(side), "exercise is not unilateral"))
		}
	default:
		return nil, fmt.Errorf("restore cursor %s/%s: %w", state.Cursor.ExerciseID, state.Cursor.SetID, invalid("side", string(side), "unknown pending side"))
	}
	s.pos = p
	s.complete = false
	s.loggedSide = side
	log.Debugf("session restored, cursor %s", s.Cursor())
	return s, nil
}

func (s *Session) locate(exerciseID, setID string) (position, error) {
	ei, ok := s.plan.exercise(exerciseID)
	if !ok {
		return position{}, fmt.Errorf("exercise %s: %w", exerciseID, ErrUnknownSet)
	}
	si := s.plan[ei].SetByID(setID)
	if si < 0 {
		return position{}, fmt.Errorf("set %s/%s: %w", exerciseID, setID, ErrUnknownSet)
	}
	return position{exercise: ei, set: si}, nil
}
