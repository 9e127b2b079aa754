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

package host

import (
	"context"
	"math"
	"strconv"

	"github.com/NVIDIA/spark-console/pkg/collector/fallback"
	"github.com/NVIDIA/spark-console/pkg/collector/file"
	"github.com/NVIDIA/spark-console/pkg/errors"
	"github.com/NVIDIA/spark-console/pkg/measurement"
)

const (
	// DefaultUptimePath is the kernel uptime pseudo-file.
	DefaultUptimePath = "/proc/uptime"

	uptimeCollectorName = "uptime"
)

// UptimeCollector reads seconds since boot.
type UptimeCollector struct {
	Path string
}

// MockUptime is returned when the uptime source is unavailable: 3d 7h 42m 15s.
func MockUptime() measurement.Uptime {
	return measurement.Uptime{Seconds: 3*86400 + 7*3600 + 42*60 + 15}
}

// Collect returns whole seconds since boot, truncating the fraction.
func (c *UptimeCollector) Collect(ctx context.Context) measurement.Uptime {
	if err := ctx.Err(); err != nil {
		fallback.Source(uptimeCollectorName, err)
		return MockUptime()
	}

	path := c.Path
	if path == "" {
		path = DefaultUptimePath
	}

	fields, err := file.NewParser().GetFields(path)
	if err != nil {
		fallback.Source(uptimeCollectorName, err)
		return MockUptime()
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(secs) || secs < 0 {
		fallback.Source(uptimeCollectorName, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"failed to parse uptime", map[string]any{"raw": fields[0]}))
		return MockUptime()
	}
	if secs >= math.MaxUint64 {
		return measurement.Uptime{Seconds: math.MaxUint64}
	}

	return measurement.Uptime{Seconds: uint64(secs)}
}
