package workout

import "fmt"

// SportsWalking adds the walker's height to the base fields
type SportsWalking struct {
	Training
	Height float64 // Centimeters
}

// NewSportsWalking creates a SportsWalking workout; height is in centimeters
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (w *SportsWalking) Kind() Kind {
	return KindSportsWalking
}

// SpentCalories floor-divides the squared speed by height. The integer
// quotient is part of the reference formula and must not become a real division.
func (w *SportsWalking) SpentCalories() (float64, error) {
	if err := w.checkDuration(w.Kind().Label()); err != nil {
		return 0, err
	}
	if w.Height == 0 {
		return 0, fmt.Errorf("%s: height must be nonzero: %w", w.Kind().Label(), ErrInvalidArgument)
	}
	speed := w.MeanSpeed()
	return (walkingCalorieWeightMult*w.Weight +
		floorDiv(speed*speed, w.Height)*walkingCalorieSpeedMult*w.Weight) *
		w.DurationMinutes(), nil
}
