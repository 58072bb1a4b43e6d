package workout

// InfoMessage is the read-only summary derived from one workout
type InfoMessage struct {
	TrainingType string
	Duration     float64 // Hours
	Distance     float64 // Km
	Speed        float64 // Km/h
	Calories     float64
}

// Summarize computes the InfoMessage for w. The only error source is the
// calorie formula.
func Summarize(w Workout) (InfoMessage, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return InfoMessage{
		TrainingType: w.Kind().Label(),
		Duration:     w.Hours(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     calories,
	}, nil
}
