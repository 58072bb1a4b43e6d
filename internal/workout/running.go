package workout

// Running computes calories from mean speed and weight
type Running struct {
	Training
}

// NewRunning creates a Running workout from steps, hours and kilograms
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training: Training{Action: action, Duration: duration, Weight: weight}}
}

func (r *Running) Kind() Kind {
	return KindRunning
}

func (r *Running) SpentCalories() (float64, error) {
	if err := r.checkDuration(r.Kind().Label()); err != nil {
		return 0, err
	}
	speed := r.MeanSpeed()
	return (runningCalorieSpeedMult*speed - runningCalorieSpeedShift) *
		r.Weight / MInKm * r.DurationMinutes(), nil
}
