package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnessTracker/internal/domain"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name    string
		message domain.InfoMessage
		want    string
	}{
		{
			name:    "swimming sample",
			message: domain.InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336.00000000000006},
			want:    "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name:    "no thousands separator",
			message: domain.InfoMessage{TrainingType: "Running", Duration: 2.5, Distance: 12345.6789, Speed: 4938.27156, Calories: 1234567.0},
			want:    "Тип тренировки: Running; Длительность: 2.500 ч.; Дистанция: 12345.679 км; Ср. скорость: 4938.272 км/ч; Потрачено ккал: 1234567.000.",
		},
		{
			name:    "zeros keep three decimals",
			message: domain.InfoMessage{TrainingType: "SportsWalking", Duration: 0.25},
			want:    "Тип тренировки: SportsWalking; Длительность: 0.250 ч.; Дистанция: 0.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
		{
			name:    "negative calories are printed as is",
			message: domain.InfoMessage{TrainingType: "Running", Duration: 1, Distance: 0.65, Speed: 0.65, Calories: -8.298},
			want:    "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 0.650 км; Ср. скорость: 0.650 км/ч; Потрачено ккал: -8.298.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMessage(tt.message))
		})
	}
}

func TestFormatMessageIsIdempotent(t *testing.T) {
	message := domain.InfoMessage{TrainingType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75}
	assert.Equal(t, FormatMessage(message), FormatMessage(message))
}

func TestGenerateReportForSamplePackages(t *testing.T) {
	var messages []domain.InfoMessage
	for _, pkg := range domain.SamplePackages() {
		training, err := domain.ReadPackage(pkg.WorkoutType, pkg.Data)
		require.NoError(t, err)
		message, err := domain.Summarize(training)
		require.NoError(t, err)
		messages = append(messages, message)
	}

	assert.Equal(t, []string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}, GenerateReport(messages))
}

func TestGenerateReportEmpty(t *testing.T) {
	assert.Empty(t, GenerateReport(nil))
}
