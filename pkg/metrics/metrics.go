/*
Copyright © 2021 Dell Inc. or its subsidiaries. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics contains thin wrappers over prometheus vectors used by the provider
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ExtendedDefBuckets is prometheus.DefBuckets extended with long durations, lvm utils may hang on locks
var ExtendedDefBuckets = append(prometheus.DefBuckets, 30, 60, 120, 300)

// Metrics is a histogram vector wrapper
type Metrics struct {
	OperationsDuration *prometheus.HistogramVec
}

// NewMetrics initializes histogram metrics with provided labels
func NewMetrics(opts prometheus.HistogramOpts, labels ...string) *Metrics {
	return &Metrics{
		OperationsDuration: prometheus.NewHistogramVec(opts, labels),
	}
}

// Collect returns collector to register
func (m *Metrics) Collect() prometheus.Collector {
	return m.OperationsDuration
}

// EvaluateDuration starts timer and returns func which observes elapsed time with labels
// Usage: defer m.EvaluateDuration(prometheus.Labels{"name": "lvs"})()
func (m *Metrics) EvaluateDuration(labels prometheus.Labels) func() {
	start := time.Now()
	return func() {
		m.ObserveSince(start, labels)
	}
}

// ObserveSince observes time elapsed from start, for cases when labels are known only at the end
func (m *Metrics) ObserveSince(start time.Time, labels prometheus.Labels) {
	m.OperationsDuration.With(labels).Observe(time.Since(start).Seconds())
}

// Counter is a counter vector wrapper
type Counter struct {
	CounterVec *prometheus.CounterVec
}

// NewCounterWithCustomLabels initializes counter with provided labels
func NewCounterWithCustomLabels(opts prometheus.CounterOpts, labels ...string) *Counter {
	return &Counter{
		CounterVec: prometheus.NewCounterVec(opts, labels),
	}
}

// Collect returns collector to register
func (c *Counter) Collect() prometheus.Collector {
	return c.CounterVec
}

// Inc increments counter for labels
func (c *Counter) Inc(labels prometheus.Labels) {
	c.CounterVec.With(labels).Inc()
}

// Clear deletes counter for labels
func (c *Counter) Clear(labels prometheus.Labels) {
	c.CounterVec.Delete(labels)
}
