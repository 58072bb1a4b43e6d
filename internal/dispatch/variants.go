package dispatch

import "github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/workout"

// Activity codes sent by data producers. These and the argument order of
// each variant must not change without a version bump.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Variant binds an activity code to a workout constructor
type Variant struct {
	Code string
	Kind workout.Kind
	Args []string // Positional argument names, action count first
	// New receives the action count and the remaining arguments in order
	New func(action int, rest []float64) workout.Workout
}

// DefaultVariants is the registry of recognized activity codes
var DefaultVariants = []Variant{
	{
		Code: CodeSwimming,
		Kind: workout.KindSwimming,
		Args: []string{"action", "duration_h", "weight_kg", "length_pool_m", "count_pool"},
		New: func(action int, rest []float64) workout.Workout {
			return workout.NewSwimming(action, rest[0], rest[1], rest[2], rest[3])
		},
	},
	{
		Code: CodeRunning,
		Kind: workout.KindRunning,
		Args: []string{"action", "duration_h", "weight_kg"},
		New: func(action int, rest []float64) workout.Workout {
			return workout.NewRunning(action, rest[0], rest[1])
		},
	},
	{
		Code: CodeWalking,
		Kind: workout.KindSportsWalking,
		Args: []string{"action", "duration_h", "weight_kg", "height_cm"},
		New: func(action int, rest []float64) workout.Workout {
			return workout.NewSportsWalking(action, rest[0], rest[1], rest[2])
		},
	},
}
