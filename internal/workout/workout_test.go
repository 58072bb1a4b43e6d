package workout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunning_Formulas(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	assert.Equal(t, KindRunning, r.Kind())
	assert.InDelta(t, 9.75, r.Distance(), 1e-12)
	assert.InDelta(t, 9.75, r.MeanSpeed(), 1e-12)
	assert.Equal(t, 60.0, r.DurationMinutes())

	calories, err := r.SpentCalories()
	require.NoError(t, err)
	// (18*9.75 - 20) * 75 / 1000 * 60
	assert.InDelta(t, 699.75, calories, 1e-9)
}

func TestSportsWalking_FloorDivisionDropsSmallSpeedTerm(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)

	assert.InDelta(t, 5.85, w.Distance(), 1e-12)
	assert.InDelta(t, 5.85, w.MeanSpeed(), 1e-12)

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	// 34.2225 // 180 == 0, leaving only the weight term
	assert.InDelta(t, 157.5, calories, 1e-9)
}

func TestSportsWalking_FloorDivisionKeepsWholeQuotient(t *testing.T) {
	w := NewSportsWalking(100000, 1, 75, 30)

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	// speed 65, 4225 // 30 == 140
	assert.InDelta(t, (0.035*75+140*0.029*75)*60, calories, 1e-9)
}

func TestSportsWalking_ZeroHeight(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 0)

	_, err := w.SpentCalories()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "SportsWalking")
}

func TestSwimming_Formulas(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	assert.Equal(t, KindSwimming, s.Kind())
	assert.InDelta(t, 0.9936, s.Distance(), 1e-12)
	assert.InDelta(t, 1.0, s.MeanSpeed(), 1e-12)

	calories, err := s.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, calories, 1e-9)
}

func TestSwimming_MeanSpeedIgnoresStrokes(t *testing.T) {
	few := NewSwimming(10, 2, 80, 50, 20)
	many := NewSwimming(99999, 2, 80, 50, 20)

	assert.Equal(t, few.MeanSpeed(), many.MeanSpeed())
	assert.NotEqual(t, few.Distance(), many.Distance())
}

func TestMeanSpeed_EqualsDistanceOverDuration(t *testing.T) {
	workouts := []Workout{
		NewRunning(12345, 1.5, 70),
		NewSportsWalking(7777, 0.75, 60, 170),
	}
	for _, w := range workouts {
		assert.Equal(t, w.Distance()/w.Hours(), w.MeanSpeed(), w.Kind().Label())
	}
}

func TestMeanSpeed_NegativeDurationIsNotClamped(t *testing.T) {
	r := NewRunning(1000, -1, 70)
	assert.Equal(t, r.Distance()/r.Hours(), r.MeanSpeed())
	assert.Less(t, r.MeanSpeed(), 0.0)
}

func TestSpentCalories_NonPositiveDuration(t *testing.T) {
	workouts := []Workout{
		NewRunning(15000, 0, 75),
		NewRunning(15000, -1, 75),
		NewSportsWalking(9000, 0, 75, 180),
		NewSportsWalking(9000, -1, 75, 180),
		NewSwimming(720, 0, 80, 25, 40),
		NewSwimming(720, -0.5, 80, 25, 40),
	}
	for _, w := range workouts {
		_, err := w.SpentCalories()
		require.Error(t, err, "%s %v h", w.Kind().Label(), w.Hours())
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), w.Kind().Label())

		_, err = Summarize(w)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	for action := 0; action <= 50000; action += 1250 {
		assert.GreaterOrEqual(t, NewRunning(action, 1, 70).Distance(), 0.0)
		assert.GreaterOrEqual(t, NewSportsWalking(action, 1, 70, 175).Distance(), 0.0)
		assert.GreaterOrEqual(t, NewSwimming(action, 1, 70, 25, 10).Distance(), 0.0)
	}
}

func TestTraining_NotImplemented(t *testing.T) {
	tr := NewTraining(1000, 1, 70)

	_, err := tr.SpentCalories()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotImplemented)

	var nie *NotImplementedError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, "Training", nie.Label)
}

func TestSummarize(t *testing.T) {
	msg, err := Summarize(NewSwimming(720, 1, 80, 25, 40))
	require.NoError(t, err)

	assert.Equal(t, "Swimming", msg.TrainingType)
	assert.Equal(t, 1.0, msg.Duration)
	assert.InDelta(t, 0.9936, msg.Distance, 1e-12)
	assert.InDelta(t, 1.0, msg.Speed, 1e-12)
	assert.InDelta(t, 336.0, msg.Calories, 1e-9)
}

func TestSummarize_PropagatesNotImplemented(t *testing.T) {
	msg, err := Summarize(NewTraining(1, 1, 1))
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, InfoMessage{}, msg)
}

func TestKind_Labels(t *testing.T) {
	assert.Equal(t, "Running", KindRunning.Label())
	assert.Equal(t, "SportsWalking", KindSportsWalking.Label())
	assert.Equal(t, "Swimming", KindSwimming.Label())
	assert.Equal(t, "Training", KindTraining.Label())
	assert.Equal(t, "Unknown", Kind(42).Label())

	seen := make(map[string]bool)
	for _, info := range AllKinds {
		assert.False(t, seen[info.Label], "duplicate label %s", info.Label)
		seen[info.Label] = true
	}
}
