package workout

// Swimming measures speed from pool laps instead of strokes
type Swimming struct {
	Training
	LengthPool float64 // Meters
	CountPool  float64 // Laps
}

// NewSwimming creates a Swimming workout from strokes, hours, kilograms and pool laps
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) *Swimming {
	return &Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// Distance uses the stroke length rather than the step length
func (s *Swimming) Distance() float64 {
	return float64(s.Action) * SwimmingLenStep / MInKm
}

// MeanSpeed ignores strokes entirely and only looks at the pool laps
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() (float64, error) {
	if err := s.checkDuration(s.Kind().Label()); err != nil {
		return 0, err
	}
	return (s.MeanSpeed() + swimmingCalorieSpeedShift) *
		swimmingCalorieWeightMult * s.Weight, nil
}
