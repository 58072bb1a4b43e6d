// Package workout holds the per-activity distance, speed and calorie formulas.
package workout

import "fmt"

// Workout is the capability set shared by every workout variant
type Workout interface {
	Kind() Kind
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	DurationMinutes() float64
	SpentCalories() (float64, error)
}

// Training holds the fields every workout is constructed from.
// On its own it has no calorie formula.
type Training struct {
	Action   int     // Steps or strokes
	Duration float64 // Hours
	Weight   float64 // Kilograms
}

// NewTraining creates a bare Training
func NewTraining(action int, duration, weight float64) *Training {
	return &Training{Action: action, Duration: duration, Weight: weight}
}

// Kind reports KindTraining for a bare Training
func (t *Training) Kind() Kind {
	return KindTraining
}

// Hours returns the duration in hours
func (t *Training) Hours() float64 {
	return t.Duration
}

// Distance returns the covered distance in km
func (t *Training) Distance() float64 {
	return float64(t.Action) * LenStep / MInKm
}

// MeanSpeed returns the average speed in km/h. A zero duration yields
// Inf or NaN; SpentCalories rejects such workouts.
func (t *Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// DurationMinutes returns the duration in minutes
func (t *Training) DurationMinutes() float64 {
	return t.Duration * MinInH
}

// SpentCalories has no general formula; every variant overrides it
func (t *Training) SpentCalories() (float64, error) {
	return 0, &NotImplementedError{Label: t.Kind().Label()}
}

// checkDuration rejects durations the speed formulas cannot divide by
func (t *Training) checkDuration(label string) error {
	if !(t.Duration > 0) {
		return fmt.Errorf("%s: duration must be positive, got %v: %w", label, t.Duration, ErrInvalidArgument)
	}
	return nil
}

// Compile-time interface checks
var (
	_ Workout = (*Training)(nil)
	_ Workout = (*Running)(nil)
	_ Workout = (*SportsWalking)(nil)
	_ Workout = (*Swimming)(nil)
)
