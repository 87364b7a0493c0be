package domain

import (
	"fmt"
	"math"
)

// Training is the set of calculations every workout type provides
type Training interface {
	Name() string
	Reading() WorkoutReading
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// WorkoutReading holds the sensor data shared by all workout types
type WorkoutReading struct {
	Action   int
	Duration float64
	Weight   float64
}

// NewWorkoutReading validates and creates a new reading
func NewWorkoutReading(action int, duration, weight float64) (WorkoutReading, error) {
	if err := checkPositiveDivisor("duration", duration); err != nil {
		return WorkoutReading{}, err
	}
	if err := checkFinite("weight", weight); err != nil {
		return WorkoutReading{}, err
	}
	if weight <= 0 {
		return WorkoutReading{}, fmt.Errorf("weight must be greater than 0, got %v: %w", weight, ErrInvalidReading)
	}
	if action < 0 {
		return WorkoutReading{}, fmt.Errorf("action count must not be negative, got %d: %w", action, ErrInvalidReading)
	}

	return WorkoutReading{
		Action:   action,
		Duration: duration,
		Weight:   weight,
	}, nil
}

// Running represents a run
type Running struct {
	reading WorkoutReading
}

const (
	RunningLenStep = 0.65

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// NewRunning creates a run from its sensor data
func NewRunning(action int, duration, weight float64) (*Running, error) {
	reading, err := NewWorkoutReading(action, duration, weight)
	if err != nil {
		return nil, err
	}
	return &Running{reading: reading}, nil
}

func (r *Running) Name() string            { return "Running" }
func (r *Running) Reading() WorkoutReading { return r.reading }

func (r *Running) Distance() float64 {
	return distanceKm(r.reading.Action, RunningLenStep)
}

func (r *Running) MeanSpeed() float64 {
	return meanSpeed(r.Distance(), r.reading.Duration)
}

func (r *Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.reading.Weight / MInKm * r.reading.Duration * MinInH
}

// SportsWalking represents a race walking session
type SportsWalking struct {
	reading WorkoutReading
	height  float64
}

const (
	WalkingLenStep = 0.65

	walkingCaloriesWeightMultiplier = 0.035
	walkingCaloriesSpeedHeightRatio = 0.029
)

// NewSportsWalking creates a walking session, height is in centimetres
func NewSportsWalking(action int, duration, weight, height float64) (*SportsWalking, error) {
	reading, err := NewWorkoutReading(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err = checkPositiveDivisor("height", height); err != nil {
		return nil, err
	}
	return &SportsWalking{reading: reading, height: height}, nil
}

func (w *SportsWalking) Name() string            { return "SportsWalking" }
func (w *SportsWalking) Reading() WorkoutReading { return w.reading }

// Height returns the athlete height in centimetres
func (w *SportsWalking) Height() float64 { return w.height }

func (w *SportsWalking) Distance() float64 {
	return distanceKm(w.reading.Action, WalkingLenStep)
}

func (w *SportsWalking) MeanSpeed() float64 {
	return meanSpeed(w.Distance(), w.reading.Duration)
}

// SpentCalories floors speed²/height on purpose, the reference figures depend on it
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.reading.Weight +
		math.Floor(speed*speed/w.height)*walkingCaloriesSpeedHeightRatio*w.reading.Weight) *
		w.reading.Duration * MinInH
}

// Swimming represents a pool swim
type Swimming struct {
	reading    WorkoutReading
	poolLength float64
	poolCount  int
}

const (
	SwimmingLenStep = 1.38

	swimmingCaloriesMeanSpeedShift = 1.1
	swimmingCaloriesWeightMultiple = 2
)

// NewSwimming creates a swim, pool length is in metres and pool count in laps
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (*Swimming, error) {
	reading, err := NewWorkoutReading(action, duration, weight)
	if err != nil {
		return nil, err
	}
	if err = checkFinite("pool length", poolLength); err != nil {
		return nil, err
	}
	if poolLength < 0 || poolCount < 0 {
		return nil, fmt.Errorf("pool length and count must not be negative, got %v and %d: %w", poolLength, poolCount, ErrInvalidReading)
	}
	return &Swimming{reading: reading, poolLength: poolLength, poolCount: poolCount}, nil
}

func (s *Swimming) Name() string            { return "Swimming" }
func (s *Swimming) Reading() WorkoutReading { return s.reading }
func (s *Swimming) PoolLength() float64     { return s.poolLength }
func (s *Swimming) PoolCount() int          { return s.poolCount }

// Distance is counted from strokes, not from the pool fields
func (s *Swimming) Distance() float64 {
	return distanceKm(s.reading.Action, SwimmingLenStep)
}

func (s *Swimming) MeanSpeed() float64 {
	return meanSpeed(s.poolLength*float64(s.poolCount)/MInKm, s.reading.Duration)
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiple * s.reading.Weight
}
