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

package common

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dell/lvm-provider/pkg/metrics"
)

// ReconcileDuration used to collect durations of logical volume reconciliations
var ReconcileDuration = metrics.NewMetrics(prometheus.HistogramOpts{
	Name:    "reconcile_duration_seconds",
	Help:    "duration of the each logical volume reconcile",
	Buckets: metrics.ExtendedDefBuckets,
}, "action")

// ReconcileErrors counts failed reconciliations by error kind: policy or execution
var ReconcileErrors = metrics.NewCounterWithCustomLabels(prometheus.CounterOpts{
	Name: "reconcile_errors_total",
	Help: "number of failed logical volume reconciliations",
}, "kind")

// nolint: gochecknoinits
func init() {
	prometheus.MustRegister(ReconcileDuration.Collect())
	prometheus.MustRegister(ReconcileErrors.Collect())
}
