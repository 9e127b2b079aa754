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

package gpu

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/NVIDIA/spark-console/pkg/collector/fallback"
	"github.com/NVIDIA/spark-console/pkg/collector/host"
	"github.com/NVIDIA/spark-console/pkg/errors"
	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/runner"
	"github.com/NVIDIA/spark-console/pkg/units"
)

const (
	// DefaultCommand is the vendor tool used to query the GPU.
	DefaultCommand = "nvidia-smi"

	collectorName = "gpu"
	processesName = "gpu_processes"

	summaryQuery = "--query-gpu=name,utilization.gpu,temperature.gpu,memory.used,memory.total,power.draw"
	processQuery = "--query-compute-apps=pid,process_name,used_gpu_memory"
	csvFormat    = "--format=csv,noheader,nounits"

	summaryFieldCount = 6
	processFieldCount = 3
)

// Collector reads GPU state through the vendor tool.
type Collector struct {
	Runner runner.Runner

	// Command overrides the vendor tool. Defaults to nvidia-smi.
	Command string

	// MemInfoPath is read when the tool cannot report a memory total.
	// Defaults to /proc/meminfo.
	MemInfoPath string
}

// Mock is returned when the vendor tool is unavailable.
func Mock() measurement.GPU {
	return measurement.GPU{
		Name:           "NVIDIA GH200 (mock)",
		UtilizationPct: 42,
		TemperatureC:   55,
		MemoryUsedMiB:  15360,
		MemoryTotalMiB: 98304,
		PowerDrawW:     185,
		UnifiedMemory:  false,
		Processes: []measurement.GPUProcess{
			{PID: 1234, Name: "python3", MemoryMiB: 8192},
			{PID: 5678, Name: "comfyui", MemoryMiB: 4096},
			{PID: 9012, Name: "ollama", MemoryMiB: 3072},
		},
	}
}

// Collect returns the primary GPU's readings. It never fails.
func (c *Collector) Collect(ctx context.Context) measurement.GPU {
	g, err := c.collectSummary(ctx)
	if err != nil {
		fallback.Source(collectorName, err)
		return Mock()
	}

	g.Processes = c.collectProcesses(ctx)
	return g
}

func (c *Collector) command() string {
	if c.Command == "" {
		return DefaultCommand
	}
	return c.Command
}

func (c *Collector) run(ctx context.Context, args ...string) (*runner.Result, error) {
	r := c.Runner
	if r == nil {
		r = runner.NewExecRunner()
	}
	return r.Run(ctx, c.command(), args...)
}

func (c *Collector) collectSummary(ctx context.Context) (measurement.GPU, error) {
	res, err := c.run(ctx, summaryQuery, csvFormat)
	if err != nil {
		return measurement.GPU{}, err
	}
	if !res.Success() {
		return measurement.GPU{}, errors.NewWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("%s exited with status %d", c.command(), res.ExitCode),
			map[string]any{"stderr": res.StderrString()})
	}

	line := firstLine(res.StdoutString())
	fields := splitCSV(line)
	if len(fields) < summaryFieldCount {
		return measurement.GPU{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unexpected summary format", map[string]any{"line": line})
	}

	g := measurement.GPU{
		Name:           fields[0],
		UtilizationPct: vendorFloat("utilization", fields[1]),
		TemperatureC:   uint32(math.Min(vendorFloat("temperature", fields[2]), math.MaxUint32)),
		PowerDrawW:     vendorFloat("power_draw", fields[5]),
		Processes:      []measurement.GPUProcess{},
	}

	if used, ok := units.ParseVendorField(fields[3]); ok && used > 0 {
		g.MemoryUsedMiB = uint64(used)
	}

	if total, ok := units.ParseVendorField(fields[4]); ok && total >= 0 {
		g.MemoryTotalMiB = uint64(total)
	} else {
		g.UnifiedMemory = true
		g.MemoryTotalMiB = c.hostMemoryMiB(fields[4])
	}

	return g, nil
}

// hostMemoryMiB is the unified-memory fallback for the memory total.
func (c *Collector) hostMemoryMiB(raw string) uint64 {
	slog.Warn("gpu memory total not reported, using host memory",
		slog.String("raw", raw))

	total, err := host.ReadMemTotalMiB(c.MemInfoPath)
	if err != nil {
		fallback.Field(collectorName, "memory_total", raw)
		return 0
	}
	return total
}

func (c *Collector) collectProcesses(ctx context.Context) []measurement.GPUProcess {
	procs := []measurement.GPUProcess{}

	res, err := c.run(ctx, processQuery, csvFormat)
	if err != nil {
		fallback.Source(processesName, err)
		return procs
	}
	if !res.Success() {
		fallback.Source(processesName, fmt.Errorf("%s process query failed: %s", c.command(), res.StderrString()))
		return procs
	}

	for _, line := range strings.Split(res.StdoutString(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitCSV(line)
		if len(fields) < processFieldCount {
			fallback.Row(collectorName, line, "expected at least 3 fields")
			continue
		}

		procs = append(procs, measurement.GPUProcess{
			PID:       parsePID(fields[0]),
			Name:      fields[1],
			MemoryMiB: processMemory(fields[2]),
		})
	}

	return procs
}

// vendorFloat parses a reading that may be reported as "[N/A]".
// Absent and negative values read as zero.
func vendorFloat(field, raw string) float64 {
	v, ok := units.ParseVendorField(raw)
	if !ok || v < 0 {
		fallback.Field(collectorName, field, raw)
		return 0
	}
	return v
}

func parsePID(raw string) uint32 {
	pid, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fallback.Field(collectorName, "pid", raw)
		return 0
	}
	return uint32(pid)
}

func processMemory(raw string) uint64 {
	mem, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fallback.Field(collectorName, "used_gpu_memory", raw)
		return 0
	}
	return mem
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func splitCSV(line string) []string {
	if line == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
