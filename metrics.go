package rotlog

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what a Logger writes and how its rotations go.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	LinesTotal          *prometheus.CounterVec
	BytesWrittenTotal   prometheus.Counter
	RotationsTotal      prometheus.Counter
	RotationErrorsTotal prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LinesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rotlog_lines_total",
				Help: "Total number of log lines emitted",
			},
			[]string{"severity"},
		),
		BytesWrittenTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotlog_bytes_written_total",
				Help: "Total number of bytes written to the log destination",
			},
		),
		RotationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotlog_rotations_total",
				Help: "Total number of completed log rotations",
			},
		),
		RotationErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rotlog_rotation_errors_total",
				Help: "Total number of failed log rotations",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.LinesTotal, m.BytesWrittenTotal, m.RotationsTotal, m.RotationErrorsTotal)
	}
	return m
}

func (m *Metrics) observeLine(level Severity, n int) {
	if m == nil {
		return
	}
	m.LinesTotal.WithLabelValues(level.String()).Inc()
	m.BytesWrittenTotal.Add(float64(n))
}

func (m *Metrics) observeRotation(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.RotationErrorsTotal.Inc()
		return
	}
	m.RotationsTotal.Inc()
}
