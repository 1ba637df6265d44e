package measure

import "time"

// Measure keeps one Metric per algorithm.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) (Metric, bool)
	AllMetrics() map[string]Metric
}

// Metric aggregates the runs of a single algorithm.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddFailure(elapsed time.Duration)
	Runs() int64
	Failures() int64
	AVGDuration() time.Duration
	TotalDuration() time.Duration
}
