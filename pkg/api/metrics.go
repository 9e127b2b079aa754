// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"github.com/NVIDIA/spark-console/pkg/measurement"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var actionLatency = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "spark_container_action_duration_seconds",
		Help:    "Latency of container lifecycle actions served over HTTP",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"action"},
)

// actionLabel bounds the label set to the known actions.
func actionLabel(action string) string {
	if measurement.IsValidAction(action) {
		return action
	}
	return "invalid"
}
