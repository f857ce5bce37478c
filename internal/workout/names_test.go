package workout_test

import (
	"testing"

	"github.com/2beens/liftload/internal/workout"

	"github.com/stretchr/testify/assert"
)

func TestNameKey(t *testing.T) {
	assert.Equal(t, "bench press", workout.NameKey("Bench Press"))
	assert.Equal(t, "bench press", workout.NameKey("  BENCH   press "))
	assert.Equal(t, workout.NameKey("Straße"), workout.NameKey("STRASSE"))
	// fullwidth letters normalize to ascii
	assert.Equal(t, "squat", workout.NameKey("ＳＱＵＡＴ"))
}

func TestExerciseRef_Key(t *testing.T) {
	assert.Equal(t, "ex-1", workout.ExerciseRef{CatalogID: "ex-1", Name: "Squat"}.Key())
	assert.Equal(t, "name:goblet squat", workout.ExerciseRef{Name: "Goblet Squat"}.Key())
}

func TestFindBrand(t *testing.T) {
	ratio := 0.8
	brands := []workout.BrandEquivalency{
		{Brand: "Technogym", Ratio: &ratio},
		{Brand: "Panatta"},
	}

	b, ok := workout.FindBrand(brands, "technogym")
	assert.True(t, ok)
	assert.Equal(t, 0.8, *b.Ratio)

	_, ok = workout.FindBrand(brands, "")
	assert.False(t, ok)
	_, ok = workout.FindBrand(brands, "Hammer")
	assert.False(t, ok)
}

func TestModes(t *testing.T) {
	assert.True(t, workout.TrainingModeReps.IsRepBased())
	assert.True(t, workout.TrainingModePercent.IsRepBased())
	assert.True(t, workout.TrainingMode("").IsRepBased())
	assert.False(t, workout.TrainingModeTime.IsRepBased())
	assert.False(t, workout.TrainingMode("yoga").IsValid())
	assert.True(t, workout.IntensityAMRAP.IsValid())
	assert.False(t, workout.IntensityMode("hard").IsValid())
	assert.True(t, workout.PendingLeft.IsPending())
	assert.False(t, workout.PendingNone.IsPending())
	assert.Equal(t, "none", workout.Side("").String())
}
