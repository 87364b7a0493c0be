package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// WorkoutType is the code a sensor block uses to identify a workout
type WorkoutType string

const (
	WorkoutSwimming WorkoutType = "SWM"
	WorkoutRunning  WorkoutType = "RUN"
	WorkoutWalking  WorkoutType = "WLK"
)

type trainingConstructor struct {
	fields []string
	build  func(data []float64) (Training, error)
}

var workoutConstructors = map[WorkoutType]trainingConstructor{
	WorkoutSwimming: {
		fields: []string{"action", "duration", "weight", "pool length", "pool count"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			poolCount, err := wholeNumber("pool count", data[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, data[1], data[2], data[3], poolCount)
		},
	},
	WorkoutRunning: {
		fields: []string{"action", "duration", "weight"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, data[1], data[2])
		},
	},
	WorkoutWalking: {
		fields: []string{"action", "duration", "weight", "height"},
		build: func(data []float64) (Training, error) {
			action, err := wholeNumber("action", data[0])
			if err != nil {
				return nil, err
			}
			return NewSportsWalking(action, data[1], data[2], data[3])
		},
	},
}

// WorkoutTypes returns the sorted list of recognised workout codes
func WorkoutTypes() []string {
	codes := make([]string, 0, len(workoutConstructors))
	for code := range workoutConstructors {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds the training matching the workout code from positional sensor data
func ReadPackage(workoutType string, data []float64) (Training, error) {
	constructor, ok := workoutConstructors[WorkoutType(workoutType)]
	if !ok {
		return nil, fmt.Errorf("%q is not one of %s: %w", workoutType, strings.Join(WorkoutTypes(), ", "), ErrUnknownWorkoutType)
	}
	if len(data) != len(constructor.fields) {
		return nil, fmt.Errorf("%s expects %d values (%s), got %d: %w",
			workoutType, len(constructor.fields), strings.Join(constructor.fields, ", "), len(data), ErrInvalidArgumentCount)
	}

	training, err := constructor.build(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", workoutType, err)
	}
	return training, nil
}

// wholeNumber converts a counter field, rejecting fractional values
func wholeNumber(name string, value float64) (int, error) {
	if err := checkFinite(name, value); err != nil {
		return 0, err
	}
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%s must be a whole number, got %v: %w", name, value, ErrInvalidReading)
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, fmt.Errorf("%s is out of range, got %v: %w", name, value, ErrInvalidReading)
	}
	return int(value), nil
}
