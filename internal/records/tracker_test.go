package records_test

import (
	"testing"

	"github.com/2beens/liftload/internal/history"
	"github.com/2beens/liftload/internal/records"
	"github.com/2beens/liftload/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var benchRef = workout.ExerciseRef{CatalogID: "bench", Name: "Bench Press"}

func f64(v float64) *float64 {
	return &v
}

func set(weight float64, reps int, brand string) workout.LoggedSet {
	return workout.LoggedSet{
		Record: workout.CompletedSetRecord{
			Weight:       weight,
			Reps:         &reps,
			MachineBrand: brand,
		},
	}
}

func TestTracker_FindPR_NoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	historyMock := NewMockhistorySource(ctrl)
	tracker := records.NewTracker(historyMock)

	historyMock.EXPECT().SetsFor(benchRef).Return(nil)

	_, ok := tracker.FindPR(benchRef, nil, "")
	assert.False(t, ok)
}

func TestTracker_FindPR_BestE1RM(t *testing.T) {
	ctrl := gomock.NewController(t)
	historyMock := NewMockhistorySource(ctrl)
	tracker := records.NewTracker(historyMock)

	duration := 60
	timed := workout.LoggedSet{Record: workout.CompletedSetRecord{Weight: 200, Duration: &duration}}

	historyMock.EXPECT().SetsFor(benchRef).Return([]workout.LoggedSet{
		set(105, 3, ""),
		set(100, 5, ""),
		set(110, 1, ""),
		set(0, 10, ""),
		timed,
	})

	pr, ok := tracker.FindPR(benchRef, nil, "")
	require.True(t, ok)
	assert.Equal(t, "100 x 5", pr.BestWeightReps)
	assert.InDelta(t, 112.51, pr.BestE1RM, 0.01)
	assert.Equal(t, 5, pr.RepsAtBestE1RM)
	assert.Equal(t, 100.0, pr.Weight)
}

func TestTracker_FindPR_TieBreakPrefersFewerReps(t *testing.T) {
	// 97.22 x 2 and 100 x 1 both estimate 100.0 at one decimal
	orders := map[string][]workout.LoggedSet{
		"fewer reps last":  {set(97.22, 2, ""), set(100, 1, "")},
		"fewer reps first": {set(100, 1, ""), set(97.22, 2, "")},
	}

	for name, sets := range orders {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			historyMock := NewMockhistorySource(ctrl)
			tracker := records.NewTracker(historyMock)
			historyMock.EXPECT().SetsFor(gomock.Any()).Return(sets)

			pr, ok := tracker.FindPR(benchRef, nil, "")
			require.True(t, ok)
			assert.Equal(t, 1, pr.RepsAtBestE1RM)
			assert.Equal(t, "100 x 1", pr.BestWeightReps)
		})
	}
}

func TestTracker_FindPR_BrandNormalization(t *testing.T) {
	brands := []workout.BrandEquivalency{
		{Brand: "Technogym", Ratio: f64(1.2)},
		{Brand: "Panatta", Ratio: f64(0.8)},
		{Brand: "Matrix"},
	}

	ctrl := gomock.NewController(t)
	historyMock := NewMockhistorySource(ctrl)
	tracker := records.NewTracker(historyMock)

	historyMock.EXPECT().SetsFor(benchRef).Return([]workout.LoggedSet{
		set(100, 1, "technogym"),
	}).Times(2)

	pr, ok := tracker.FindPR(benchRef, brands, "Panatta")
	require.True(t, ok)
	// 100 on technogym is 120 on the base scale, 150 on panatta
	assert.InDelta(t, 150, pr.BestE1RM, 1e-9)
	assert.Equal(t, "150 x 1", pr.BestWeightReps)

	pr, ok = tracker.FindPR(benchRef, brands, "Matrix")
	require.True(t, ok)
	// a brand without ratio counts as baseline
	assert.InDelta(t, 120, pr.BestE1RM, 1e-9)
}

func TestTracker_FindPR_UnknownBrandRatio(t *testing.T) {
	brands := []workout.BrandEquivalency{
		{Brand: "Technogym", Ratio: f64(1.2)},
	}

	ctrl := gomock.NewController(t)
	historyMock := NewMockhistorySource(ctrl)
	historyMock.EXPECT().SetsFor(benchRef).Return([]workout.LoggedSet{
		set(100, 1, "Hammer"),
	}).Times(2)

	pr, ok := records.NewTracker(historyMock).FindPR(benchRef, brands, "Technogym")
	require.True(t, ok)
	assert.Equal(t, "83.33 x 1", pr.BestWeightReps)

	pr, ok = records.NewTracker(historyMock, records.WithUnknownBrandRatio(0.5)).FindPR(benchRef, brands, "Technogym")
	require.True(t, ok)
	assert.Equal(t, "41.67 x 1", pr.BestWeightReps)
}

func TestTracker_FindPR_WithHistoryLog(t *testing.T) {
	log := history.NewLog(workout.LoggedSession{
		ID: "s1",
		Exercises: []workout.LoggedExercise{
			{CatalogID: "bench", Name: "Bench Press", Sets: []workout.LoggedSet{set(80, 8, "")}},
			{CatalogID: "squat", Name: "Squat", Sets: []workout.LoggedSet{set(140, 3, "")}},
		},
	})

	pr, ok := records.NewTracker(log).FindPR(benchRef, nil, "")
	require.True(t, ok)
	assert.Equal(t, "80 x 8", pr.BestWeightReps)
}

func TestTracker_Evaluate(t *testing.T) {
	tracker := records.NewTracker(history.NewLog())

	e1rm, isPR := tracker.Evaluate(0, 100, 5)
	assert.InDelta(t, 112.51, e1rm, 0.01)
	assert.False(t, isPR, "no previous best, no record")

	_, isPR = tracker.Evaluate(100, 100, 2)
	assert.True(t, isPR)

	_, isPR = tracker.Evaluate(100, 97.22, 2)
	assert.False(t, isPR, "equal at one decimal is not a record")

	e1rm, isPR = tracker.Evaluate(100, 0, 5)
	assert.Equal(t, 0.0, e1rm)
	assert.False(t, isPR)
}

func TestFormatWeightReps(t *testing.T) {
	assert.Equal(t, "82.5 x 8", records.FormatWeightReps(82.5, 8))
	assert.Equal(t, "100 x 1", records.FormatWeightReps(100.0000001, 1))
}
