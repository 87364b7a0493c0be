package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fitnessTracker/internal/config"
	"fitnessTracker/internal/domain"
	"fitnessTracker/internal/processing"
	"fitnessTracker/internal/report"
)

// main serves as the entry point of the program, handling configuration loading, package processing, and report output
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one report run and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fitness", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "Path to JSON configuration file")
	packagesFile := flags.String("packages", "", "Path to sensor packages file, one package per line (default: built-in samples)")
	reportFile := flags.String("report", "", "Also write the report to this file")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fitness [flags]\n\nWorkout codes: %s\n\nFlags:\n", strings.Join(domain.WorkoutTypes(), ", "))
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.LoadConfiguration(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return 1
	}
	if *packagesFile != "" {
		cfg.PackagesFile = *packagesFile
	}
	if *reportFile != "" {
		cfg.ReportFile = *reportFile
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error in configuration: %v\n", err)
		return 1
	}

	logger := newLogger(cfg, stderr).With("run_id", uuid.NewString())

	exitCode := 0
	processor := processing.NewProcessor(processing.WithLogger(logger))
	if cfg.PackagesFile != "" {
		logger.Info("loading packages", "file", cfg.PackagesFile)
		if err = processor.LoadPackagesFromFile(cfg.PackagesFile); err != nil {
			// packages read before the failure are still reported
			logger.Error("error processing packages", "error", err, "reported", len(processor.Messages))
			exitCode = 1
		}
	} else {
		logger.Debug("no packages file configured, using built-in samples")
		processor.ProcessPackages(domain.SamplePackages())
	}

	reportLines := report.GenerateReport(processor.Messages)
	if err = writeLines(stdout, reportLines); err != nil {
		logger.Error("error writing report", "error", err)
		return 1
	}

	if cfg.ReportFile != "" {
		if err = writeLinesToFile(cfg.ReportFile, reportLines); err != nil {
			logger.Error("error writing report file", "file", cfg.ReportFile, "error", err)
			return 1
		}
		logger.Info("report written", "file", cfg.ReportFile)
	}

	if cfg.MetricsFile != "" {
		if err = writeMetrics(processor.Metrics(), cfg.MetricsFile); err != nil {
			logger.Error("error writing metrics", "file", cfg.MetricsFile, "error", err)
			return 1
		}
	}

	logger.Info("run completed",
		"reported", len(processor.Messages),
		"skipped", len(processor.Skipped),
	)
	return exitCode
}

// newLogger builds the structured logger on the diagnostics stream
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.ParsedLogLevel}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// writeMetrics writes the run counters as a Prometheus textfile
func writeMetrics(metrics *processing.Metrics, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return metrics.WriteToTextfile(filePath)
}

// writeLines writes a slice of lines to w
func writeLines(w io.Writer, lines []string) error {
	writer := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("error writing line: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("error flushing buffer: %w", err)
	}
	return nil
}

// writeLinesToFile writes a slice of lines to a file
func writeLinesToFile(filePath string, lines []string) (err error) {
	dir := filepath.Dir(filePath)
	if mkdirErr := os.MkdirAll(dir, 0755); mkdirErr != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, mkdirErr)
	}

	var file *os.File
	file, err = os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("error closing file %s: %w", filePath, closeErr)
		}
	}()

	if err = writeLines(file, lines); err != nil {
		return fmt.Errorf("error writing file %s: %w", filePath, err)
	}
	return nil
}
