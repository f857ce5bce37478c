package workspace_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/2beens/liftload/internal/session"
	"github.com/2beens/liftload/internal/telemetry/metrics"
	"github.com/2beens/liftload/internal/workout"
	"github.com/2beens/liftload/internal/workspace"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const catalogYAML = `
exercises:
  - id: bench
    name: Bench Press
    calculated1RM: 100
  - id: chest-press
    name: Chest Press
    brands:
      - brand: Technogym
        ratio: 1.25
        bestRecordedPR: 90
`

const planYAML = `
settings:
  barbellWeight: 20
exercises:
  - id: bench-1
    catalogId: bench
    name: Bench Press
    restTime: 120
    trainingMode: reps
    sets:
      - id: s1
        targetReps: 5
        intensityMode: rpe
        targetRPE: 8
      - id: s2
        targetReps: 5
        intensityMode: rpe
        targetRPE: 8
  - id: split-squat-1
    name: Split Squat
    isUnilateral: true
    unilateralRestTime: 30
    trainingMode: reps
    sets:
      - id: q1
        targetReps: 10
        intensityMode: approx
`

const historyYAML = `
sessions:
  - id: w1
    date: 2025-02-20T18:00:00Z
    exercises:
      - catalogId: bench
        name: Bench Press
        sets:
          - record:
              weight: 85
              reps: 5
            target:
              targetReps: 5
              intensityMode: rpe
  - id: w0
    date: 2025-02-13T18:00:00Z
    exercises:
      - name: split squat
        sets:
          - record:
              weight: 16
              reps: 10
              side: right
            target:
              targetReps: 10
              intensityMode: approx
`

const sessionLogYAML = `
commits:
  - weight: 82,5
    reps: 6
  - weight: heavy
    reps: 5
  - weight: 85
    reps: 5
    note: last one
  - weight: 20
    reps: 10
    side: right
  - weight: 20
    reps: 10
    side: left
  - weight: 20
    reps: 10
    side: right
`

func newWorkspace(t *testing.T, files map[string]string) (*workspace.Workspace, *metrics.Manager) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("ws", name), []byte(content), 0o644))
	}
	m := metrics.NewTestManager()
	return workspace.New(fs, "ws", m), m
}

func TestWorkspace_Load(t *testing.T) {
	ctx := context.Background()
	ws, m := newWorkspace(t, map[string]string{
		workspace.CatalogFile: catalogYAML,
		workspace.PlanFile:    planYAML,
		workspace.HistoryFile: historyYAML,
	})

	cat, err := ws.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	entry, ok := cat.Lookup(workout.ExerciseRef{Name: "chest press"})
	require.True(t, ok)
	ratio, ok := entry.BrandRatio("technogym")
	require.True(t, ok)
	assert.Equal(t, 1.25, ratio)

	plan, err := ws.LoadPlan(ctx)
	require.NoError(t, err)
	require.Len(t, plan.Exercises, 2)
	assert.True(t, plan.Exercises[1].IsUnilateral)
	assert.Equal(t, 8.0, *plan.Exercises[0].Sets[0].TargetRPE)

	log, err := ws.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, log.Len())
	assert.Equal(t, "w0", log.Sessions()[0].ID)
	last, ok := log.LastRecord(workout.ExerciseRef{Name: "Split Squat"})
	require.True(t, ok)
	assert.Equal(t, 16.0, last.Weight)

	assert.Equal(t, 3, testutil.CollectAndCount(m.HistWorkspaceLoadTime), "one series per file")
}

func TestWorkspace_OptionalFiles(t *testing.T) {
	ctx := context.Background()
	ws, _ := newWorkspace(t, map[string]string{})

	cat, err := ws.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())

	log, err := ws.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, log.Len())

	_, err = ws.LoadPlan(ctx)
	assert.ErrorContains(t, err, "read plan.yaml")
}

func TestWorkspace_InvalidFiles(t *testing.T) {
	ctx := context.Background()
	ws, _ := newWorkspace(t, map[string]string{
		workspace.PlanFile:    "exercises:\n  - id: a\n    sets:\n      - id: x\n      - id: x\n",
		workspace.HistoryFile: "sessions: [",
	})

	_, err := ws.LoadPlan(ctx)
	assert.ErrorContains(t, err, "invalid plan.yaml")
	assert.ErrorContains(t, err, "duplicate id")

	_, err = ws.LoadHistory(ctx)
	assert.ErrorContains(t, err, "decode history.yaml")
}

func TestPlanDocument_MergeSettings(t *testing.T) {
	base := workout.Settings{WeightUnit: workout.UnitKg, BarbellWeight: 20, Plates: []float64{25, 20, 10}}

	doc := &workspace.PlanDocument{}
	assert.Equal(t, base, doc.MergeSettings(base))

	doc.Settings = &workout.Settings{BarbellWeight: 15}
	merged := doc.MergeSettings(base)
	assert.Equal(t, 15.0, merged.BarbellWeight)
	assert.Equal(t, base.Plates, merged.Plates)

	doc.Settings = &workout.Settings{WeightUnit: workout.UnitLbs, BarbellWeight: 45}
	merged = doc.MergeSettings(base)
	assert.Equal(t, workout.UnitLbs, merged.WeightUnit)
	assert.Nil(t, merged.Plates, "kg plates do not apply to lbs")
}

func TestReplay(t *testing.T) {
	ctx := context.Background()
	ws, _ := newWorkspace(t, map[string]string{
		workspace.CatalogFile: catalogYAML,
		workspace.PlanFile:    planYAML,
		workspace.HistoryFile: historyYAML,
		"logs/today.yaml":     sessionLogYAML,
	})

	cat, err := ws.LoadCatalog(ctx)
	require.NoError(t, err)
	plan, err := ws.LoadPlan(ctx)
	require.NoError(t, err)
	log, err := ws.LoadHistory(ctx)
	require.NoError(t, err)
	commits, err := ws.LoadSessionLog(ctx, "logs/today.yaml")
	require.NoError(t, err)
	require.Len(t, commits, 6)
	assert.Equal(t, "82,5", commits[0].Weight)

	s, err := session.New(plan.Exercises, session.Deps{
		Catalog:  cat,
		History:  log,
		Settings: plan.MergeSettings(workout.Settings{WeightUnit: workout.UnitKg}),
	})
	require.NoError(t, err)

	steps := workspace.Replay(ctx, s, commits)
	require.Len(t, steps, 6)

	require.NoError(t, steps[0].Err)
	assert.Equal(t, 82.5, steps[0].Outcome.Record.Weight)
	assert.ErrorIs(t, steps[1].Err, session.ErrInvalidInput)

	require.NoError(t, steps[2].Err)
	assert.Equal(t, "last one", steps[2].Outcome.Record.Note)
	assert.Equal(t, "split-squat-1", steps[2].Outcome.Cursor.ExerciseID)

	assert.ErrorIs(t, steps[3].Err, session.ErrInvalidInput, "right side before left")
	require.NoError(t, steps[4].Err)
	assert.False(t, steps[4].Outcome.Finalized)
	require.NoError(t, steps[5].Err)
	assert.True(t, steps[5].Outcome.Has(session.SignalSessionComplete))
	assert.True(t, steps[5].Outcome.Has(session.SignalNewPersonalRecord), "20 x 10 beats 16 x 10 from history")
	assert.True(t, s.Complete())
}

func TestReplay_Select(t *testing.T) {
	ctx := context.Background()
	ws, _ := newWorkspace(t, map[string]string{workspace.PlanFile: planYAML})
	plan, err := ws.LoadPlan(ctx)
	require.NoError(t, err)

	s, err := session.New(plan.Exercises, session.Deps{Settings: workout.Settings{WeightUnit: workout.UnitKg}})
	require.NoError(t, err)

	steps := workspace.Replay(ctx, s, []workspace.Commit{
		{Exercise: "bench-1", Set: "s2", Weight: "80", Reps: "5"},
		{Exercise: "bench-1", Set: "s2", Weight: "80", Reps: "5"},
		{Exercise: "nope", Set: "s1", Weight: "80", Reps: "5"},
	})
	require.NoError(t, steps[0].Err)
	assert.Equal(t, "s2", steps[0].Outcome.Record.SetID)
	assert.ErrorIs(t, steps[1].Err, session.ErrSetLogged)
	assert.ErrorIs(t, steps[2].Err, session.ErrUnknownSet)
}
