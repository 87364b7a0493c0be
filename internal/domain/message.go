package domain

// InfoMessage holds the computed summary of one workout
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Summarize evaluates all formulas of a training and collects them into a message
func Summarize(training Training) (InfoMessage, error) {
	message := InfoMessage{
		TrainingType: training.Name(),
		Duration:     training.Reading().Duration,
		Distance:     training.Distance(),
		Speed:        training.MeanSpeed(),
		Calories:     training.SpentCalories(),
	}

	checks := []struct {
		name  string
		value float64
	}{
		{"distance", message.Distance},
		{"mean speed", message.Speed},
		{"calories", message.Calories},
	}
	for _, check := range checks {
		if err := checkFinite(check.name, check.value); err != nil {
			return InfoMessage{}, err
		}
	}

	return message, nil
}
