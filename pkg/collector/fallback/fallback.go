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

// Package fallback records every point where a collector substitutes a
// default for data it could not read. Each event is logged at warn level
// and counted, so degraded output is never silent.
package fallback

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scope identifies how much of a collector's output was substituted.
type Scope string

const (
	// ScopeSource means the whole source was unreadable and a mock or empty
	// value was returned in its place.
	ScopeSource Scope = "source"
	// ScopeField means a single field failed to parse and was defaulted.
	ScopeField Scope = "field"
	// ScopeRow means a malformed row of tabular output was skipped.
	ScopeRow Scope = "row"
)

var fallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "spark_collector_fallback_total",
		Help: "Total number of times a collector substituted a default value",
	},
	[]string{"collector", "scope"},
)

// Source records that collector could not read its source at all.
func Source(collector string, err error) {
	fallbackTotal.WithLabelValues(collector, string(ScopeSource)).Inc()
	attrs := []any{slog.String("collector", collector)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.Warn("collector source unavailable, using fallback", attrs...)
}

// Field records that a single field was defaulted.
func Field(collector, field, raw string) {
	fallbackTotal.WithLabelValues(collector, string(ScopeField)).Inc()
	slog.Warn("unparsable field, using default",
		slog.String("collector", collector),
		slog.String("field", field),
		slog.String("raw", raw))
}

// Row records that a malformed row was skipped.
func Row(collector, line, reason string) {
	fallbackTotal.WithLabelValues(collector, string(ScopeRow)).Inc()
	slog.Warn("skipping malformed row",
		slog.String("collector", collector),
		slog.String("line", line),
		slog.String("reason", reason))
}
