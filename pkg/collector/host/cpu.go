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
	// DefaultLoadAvgPath is the kernel load average pseudo-file.
	DefaultLoadAvgPath = "/proc/loadavg"

	cpuCollectorName = "cpu"
)

// CPUCollector reads the 1, 5 and 15 minute load averages.
type CPUCollector struct {
	Path string
}

// MockCPU is returned when the load average source is unavailable.
func MockCPU() measurement.CPU {
	return measurement.CPU{Load1m: 2.45, Load5m: 1.89, Load15m: 1.32}
}

// Collect returns the current load averages.
func (c *CPUCollector) Collect(ctx context.Context) measurement.CPU {
	cpu, err := c.read(ctx)
	if err != nil {
		fallback.Source(cpuCollectorName, err)
		return MockCPU()
	}
	return cpu
}

func (c *CPUCollector) read(ctx context.Context) (measurement.CPU, error) {
	if err := ctx.Err(); err != nil {
		return measurement.CPU{}, err
	}

	path := c.Path
	if path == "" {
		path = DefaultLoadAvgPath
	}

	fields, err := file.NewParser().GetFields(path)
	if err != nil {
		return measurement.CPU{}, err
	}
	if len(fields) < 3 {
		return measurement.CPU{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unexpected load average format", map[string]any{"path": path, "fields": len(fields)})
	}

	return measurement.CPU{
		Load1m:  parseLoad("load_1m", fields[0]),
		Load5m:  parseLoad("load_5m", fields[1]),
		Load15m: parseLoad("load_15m", fields[2]),
	}, nil
}

func parseLoad(field, raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		fallback.Field(cpuCollectorName, field, raw)
		return 0
	}
	return v
}
