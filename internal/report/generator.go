package report

import (
	"fmt"

	"fitnessTracker/internal/domain"
)

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// GenerateReport creates the final report as a slice of lines
func GenerateReport(messages []domain.InfoMessage) []string {
	reportLines := make([]string, 0, len(messages))

	for _, message := range messages {
		reportLines = append(reportLines, FormatMessage(message))
	}

	return reportLines
}

// FormatMessage formats the report string for a single workout
func FormatMessage(message domain.InfoMessage) string {
	return fmt.Sprintf(messageTemplate,
		message.TrainingType,
		message.Duration,
		message.Distance,
		message.Speed,
		message.Calories,
	)
}
