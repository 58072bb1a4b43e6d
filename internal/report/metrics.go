package report

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts report outcomes on its own registry
type Metrics struct {
	Registry *prometheus.Registry

	recordsCounter *prometheus.CounterVec
	skippedCounter *prometheus.CounterVec
}

// NewMetrics creates the report counters on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		recordsCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "report",
			Name:      "records_total",
			Help:      "Number of workout summaries emitted, grouped by training type.",
		}, []string{"kind"}),
		skippedCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness_tracker",
			Subsystem: "report",
			Name:      "skipped_total",
			Help:      "Number of records skipped, grouped by reason.",
		}, []string{"reason"}),
	}
	m.Registry.MustRegister(m.recordsCounter, m.skippedCounter)
	return m
}

// Observe subscribes the counters to d. The returned function unsubscribes.
func (m *Metrics) Observe(d *Driver) func() {
	unregisterLine := d.OnLine(func(line Line) {
		m.recordsCounter.WithLabelValues(line.Message.TrainingType).Inc()
	})
	unregisterDiagnostic := d.OnDiagnostic(func(diag Diagnostic) {
		m.skippedCounter.WithLabelValues(string(diag.Reason)).Inc()
	})
	return func() {
		unregisterLine()
		unregisterDiagnostic()
	}
}

// WriteTextfile writes the current counters in the node exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
