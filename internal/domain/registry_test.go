package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	tests := []struct {
		name        string
		workoutType string
		data        []float64
		wantName    string
		wantErr     error
	}{
		{name: "swimming", workoutType: "SWM", data: []float64{720, 1, 80, 25, 40}, wantName: "Swimming"},
		{name: "running", workoutType: "RUN", data: []float64{15000, 1, 75}, wantName: "Running"},
		{name: "walking", workoutType: "WLK", data: []float64{9000, 1, 75, 180}, wantName: "SportsWalking"},
		{name: "unknown code", workoutType: "XYZ", data: []float64{1, 1, 1}, wantErr: ErrUnknownWorkoutType},
		{name: "codes are case sensitive", workoutType: "run", data: []float64{15000, 1, 75}, wantErr: ErrUnknownWorkoutType},
		{name: "too few values", workoutType: "SWM", data: []float64{720, 1, 80}, wantErr: ErrInvalidArgumentCount},
		{name: "too many values", workoutType: "RUN", data: []float64{15000, 1, 75, 180}, wantErr: ErrInvalidArgumentCount},
		{name: "no values", workoutType: "WLK", wantErr: ErrInvalidArgumentCount},
		{name: "zero duration", workoutType: "RUN", data: []float64{15000, 0, 75}, wantErr: ErrNumericDomain},
		{name: "zero height", workoutType: "WLK", data: []float64{9000, 1, 75, 0}, wantErr: ErrNumericDomain},
		{name: "fractional action", workoutType: "RUN", data: []float64{15000.5, 1, 75}, wantErr: ErrInvalidReading},
		{name: "fractional laps", workoutType: "SWM", data: []float64{720, 1, 80, 25, 40.5}, wantErr: ErrInvalidReading},
		{name: "action out of range", workoutType: "RUN", data: []float64{1e10, 1, 75}, wantErr: ErrInvalidReading},
		{name: "negative laps out of range", workoutType: "SWM", data: []float64{720, 1, 80, 25, -1e10}, wantErr: ErrInvalidReading},
		{name: "fractional pool length is fine", workoutType: "SWM", data: []float64{720, 1, 80, 33.3, 40}, wantName: "Swimming"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			training, err := ReadPackage(tt.workoutType, tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, training)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, training.Name())
		})
	}
}

func TestReadPackageAssignsFieldsPositionally(t *testing.T) {
	training, err := ReadPackage("SWM", []float64{720, 1.5, 80, 25, 40})
	require.NoError(t, err)

	swimming, ok := training.(*Swimming)
	require.True(t, ok)
	assert.Equal(t, WorkoutReading{Action: 720, Duration: 1.5, Weight: 80}, swimming.Reading())
	assert.Equal(t, 25.0, swimming.PoolLength())
	assert.Equal(t, 40, swimming.PoolCount())

	training, err = ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	walking, ok := training.(*SportsWalking)
	require.True(t, ok)
	assert.Equal(t, 180.0, walking.Height())
}

func TestReadPackageUnknownTypeMessage(t *testing.T) {
	_, err := ReadPackage("XYZ", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"XYZ"`)
	assert.Contains(t, err.Error(), "RUN, SWM, WLK")
}

func TestWorkoutTypes(t *testing.T) {
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, WorkoutTypes())
}

func TestPackageErrorReason(t *testing.T) {
	_, err := ReadPackage("RUN", []float64{1})
	packageErr := &PackageError{Line: 3, WorkoutType: "RUN", Err: err}

	assert.Equal(t, "invalid_argument_count", packageErr.Reason())
	assert.True(t, errors.Is(packageErr, ErrInvalidArgumentCount))
	assert.Contains(t, packageErr.Error(), "package RUN at line 3")

	assert.Equal(t, "other", ErrorReason(errors.New("boom")))
}
