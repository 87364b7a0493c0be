package processing

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters of a single run
type Metrics struct {
	registry *prometheus.Registry

	processed *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	calories  *prometheus.CounterVec
	distance  *prometheus.CounterVec
}

// NewMetrics creates the run counters on a private registry
func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Name:      "packages_processed_total",
			Help:      "Number of sensor packages turned into a report line.",
		}, []string{"workout_type"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Name:      "packages_skipped_total",
			Help:      "Number of sensor packages skipped, grouped by reason.",
		}, []string{"reason"}),
		calories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Name:      "calories_kcal_total",
			Help:      "Calories spent across reported workouts.",
		}, []string{"workout_type"}),
		distance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Name:      "distance_km_total",
			Help:      "Distance covered across reported workouts.",
		}, []string{"workout_type"}),
	}
	metrics.registry.MustRegister(metrics.processed, metrics.skipped, metrics.calories, metrics.distance)
	return metrics
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes the counters in the Prometheus text format
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) recordProcessed(workoutType string, distanceKm, caloriesKcal float64) {
	m.processed.WithLabelValues(workoutType).Inc()
	m.distance.WithLabelValues(workoutType).Add(distanceKm)
	// counters cannot go down, a slow run yields negative calories
	if caloriesKcal > 0 {
		m.calories.WithLabelValues(workoutType).Add(caloriesKcal)
	}
}

func (m *Metrics) recordSkipped(reason string) {
	m.skipped.WithLabelValues(reason).Inc()
}
