// Package measure records how long algorithm runs take.
package measure

import (
	"maps"
	"sync"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric returns the metric registered under name, creating it if needed.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{mu: &sync.Mutex{}}
	m.steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) (Metric, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt, ok := m.steps[name]

	return mt, ok
}

// AllMetrics returns a snapshot of the registered metrics.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.steps)
}

var _ Measure = (*DefaultMeasure)(nil)
