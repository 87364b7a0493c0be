package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Package is one raw block of sensor data: a workout code and its positional values
type Package struct {
	WorkoutType string
	Data        []float64
	RawLine     string
}

// SamplePackages returns the built-in demo data
func SamplePackages() []Package {
	return []Package{
		{WorkoutType: string(WorkoutSwimming), Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: string(WorkoutRunning), Data: []float64{15000, 1, 75}},
		{WorkoutType: string(WorkoutWalking), Data: []float64{9000, 1, 75, 180}},
	}
}

// ParsePackageFromString parses a package from a line like "SWM 720 1 80 25 40".
// Values may be separated by spaces, tabs or commas.
func ParsePackageFromString(line string) (*Package, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty package string: %w", ErrMalformedPackage)
	}

	data := make([]float64, 0, len(parts)-1)
	for i, part := range parts[1:] {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing value %d ('%s') in string '%s': %v: %w", i+1, part, line, err, ErrMalformedPackage)
		}
		data = append(data, value)
	}

	return &Package{
		WorkoutType: parts[0],
		Data:        data,
		RawLine:     line,
	}, nil
}

// String returns the package in the same form ParsePackageFromString accepts
func (p Package) String() string {
	values := make([]string, 0, len(p.Data)+1)
	values = append(values, p.WorkoutType)
	for _, value := range p.Data {
		values = append(values, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return strings.Join(values, " ")
}
