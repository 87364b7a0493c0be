package processing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"fitnessTracker/internal/domain"
)

// Processor turns sensor packages into workout summaries.
// It keeps going when a package is rejected and remembers why.
type Processor struct {
	Messages []domain.InfoMessage
	Skipped  []*domain.PackageError

	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for warnings about skipped packages
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the counters updated for every package
func WithMetrics(metrics *Metrics) Option {
	return func(p *Processor) {
		if metrics != nil {
			p.metrics = metrics
		}
	}
}

// NewProcessor creates a new processor
func NewProcessor(opts ...Option) *Processor {
	processor := &Processor{
		Messages: make([]domain.InfoMessage, 0),
		Skipped:  make([]*domain.PackageError, 0),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:  NewMetrics(),
	}
	for _, opt := range opts {
		opt(processor)
	}
	return processor
}

// Metrics returns the counters of this processor
func (processor *Processor) Metrics() *Metrics {
	return processor.metrics
}

// LoadPackagesFromFile reads packages line by line from a file and processes them
func (processor *Processor) LoadPackagesFromFile(filePath string) (err error) {
	var file *os.File
	file, err = os.Open(filePath)
	if err != nil {
		return fmt.Errorf("error opening packages file %s: %w", filePath, err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("error closing packages file %s: %w", filePath, closeErr)
		}
	}()

	if err = processor.LoadPackages(file); err != nil {
		return fmt.Errorf("error reading packages file %s: %w", filePath, err)
	}
	return nil
}

// MaxLineLength is the longest package line accepted, longer lines are skipped as malformed
const MaxLineLength = 64 * 1024

// LoadPackages processes packages read from r, one per line.
// Blank lines and lines starting with '#' are ignored.
// Packages processed before a read error are kept.
func (processor *Processor) LoadPackages(r io.Reader) error {
	reader := bufio.NewReader(r)
	lineNumber := 0

	for {
		raw, oversized, readErr := readLine(reader)
		if raw != "" || oversized {
			lineNumber++
			processor.loadLine(lineNumber, raw, oversized)
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("error reading line %d: %w", lineNumber+1, readErr)
		}
	}
}

func (processor *Processor) loadLine(lineNumber int, raw string, oversized bool) {
	if oversized {
		processor.skip(&domain.PackageError{
			Line: lineNumber,
			Err:  fmt.Errorf("line is longer than %d bytes: %w", MaxLineLength, domain.ErrMalformedPackage),
		})
		return
	}

	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	pkg, err := domain.ParsePackageFromString(line)
	if err != nil {
		processor.skip(&domain.PackageError{Line: lineNumber, RawLine: line, Err: err})
		return
	}
	processor.ProcessPackage(lineNumber, *pkg)
}

// readLine reads up to and including the next '\n'.
// The rest of a line over MaxLineLength is discarded and reported as oversized.
func readLine(reader *bufio.Reader) (string, bool, error) {
	var line []byte
	oversized := false
	for {
		chunk, err := reader.ReadSlice('\n')
		if !oversized {
			if len(line)+len(chunk) > MaxLineLength+1 {
				oversized = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return string(line), oversized, err
	}
}

// ProcessPackages processes in-memory packages, numbering them from 1
func (processor *Processor) ProcessPackages(packages []domain.Package) {
	for i, pkg := range packages {
		processor.ProcessPackage(i+1, pkg)
	}
}

// ProcessPackage handles a single package.
// The returned error is informational: the package is already recorded as skipped.
func (processor *Processor) ProcessPackage(line int, pkg domain.Package) error {
	training, err := domain.ReadPackage(pkg.WorkoutType, pkg.Data)
	if err != nil {
		return processor.skip(&domain.PackageError{Line: line, WorkoutType: pkg.WorkoutType, RawLine: rawLine(pkg), Err: err})
	}

	message, err := domain.Summarize(training)
	if err != nil {
		return processor.skip(&domain.PackageError{Line: line, WorkoutType: pkg.WorkoutType, RawLine: rawLine(pkg), Err: err})
	}

	processor.Messages = append(processor.Messages, message)
	processor.metrics.recordProcessed(pkg.WorkoutType, message.Distance, message.Calories)
	processor.logger.Debug("package processed",
		"line", line,
		"workout_type", pkg.WorkoutType,
		"training", message.TrainingType,
		"distance_km", message.Distance,
		"speed_kmh", message.Speed,
		"calories_kcal", message.Calories,
	)
	return nil
}

// Err joins the errors of all skipped packages, nil if none were skipped
func (processor *Processor) Err() error {
	errs := make([]error, 0, len(processor.Skipped))
	for _, skipped := range processor.Skipped {
		errs = append(errs, skipped)
	}
	return errors.Join(errs...)
}

func (processor *Processor) skip(packageErr *domain.PackageError) error {
	processor.Skipped = append(processor.Skipped, packageErr)
	processor.metrics.recordSkipped(packageErr.Reason())
	processor.logger.Warn("skipping package",
		"line", packageErr.Line,
		"workout_type", packageErr.WorkoutType,
		"reason", packageErr.Reason(),
		"raw", packageErr.RawLine,
		"error", packageErr.Err,
	)
	return packageErr
}

// rawLine returns the input line of a package, rebuilding it for in-memory packages
func rawLine(pkg domain.Package) string {
	if pkg.RawLine != "" {
		return pkg.RawLine
	}
	return pkg.String()
}
