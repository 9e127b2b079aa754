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

package container

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/spark-console/pkg/collector/fallback"
	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/runner"
	"github.com/NVIDIA/spark-console/pkg/units"
)

const (
	// DefaultRuntime is the container runtime CLI.
	DefaultRuntime = "docker"

	collectorName = "container"
	statsName     = "container_stats"
	inspectName   = "container_inspect"

	listFormat    = "{{.ID}}\t{{.Names}}\t{{.Image}}\t{{.State}}\t{{.Status}}\t{{.Ports}}\t{{.CreatedAt}}"
	statsFormat   = "{{.Name}}\t{{.CPUPerc}}\t{{.MemUsage}}\t{{.NetIO}}"
	inspectFormat = "{{.HostConfig.Runtime}}\t{{.HostConfig.RestartPolicy.Name}}\t{{json .Mounts}}"

	listFieldCount  = 7
	statsFieldCount = 4
)

// Collector lists containers and runs lifecycle actions through the
// runtime CLI.
type Collector struct {
	Runner runner.Runner

	// Runtime overrides the runtime CLI. Defaults to docker.
	Runtime string
}

type stats struct {
	cpuPct     float64
	memUsage   uint64
	memLimit   uint64
	netRxBytes uint64
	netTxBytes uint64
}

type inspect struct {
	runtime       string
	restartPolicy string
	mounts        []string
}

// Collect returns all containers known to the runtime, running or not,
// in the order the runtime lists them. It never fails.
func (c *Collector) Collect(ctx context.Context) []measurement.Container {
	containers, err := c.list(ctx)
	if err != nil {
		fallback.Source(collectorName, err)
		containerCount.Set(0)
		return []measurement.Container{}
	}
	containerCount.Set(float64(len(containers)))

	if len(containers) == 0 {
		return containers
	}

	statsByName := map[string]stats{}
	if anyRunning(containers) {
		statsByName = c.stats(ctx)
	}

	for i := range containers {
		if s, ok := statsByName[containers[i].Name]; ok {
			containers[i].CPUPct = s.cpuPct
			containers[i].MemoryUsageBytes = s.memUsage
			containers[i].MemoryLimitBytes = s.memLimit
			containers[i].NetRxBytes = s.netRxBytes
			containers[i].NetTxBytes = s.netTxBytes
		}
	}

	for i := range containers {
		in, err := c.inspect(ctx, containers[i].ID)
		if err != nil {
			fallback.Source(inspectName, fmt.Errorf("container %s: %w", containers[i].ID, err))
			continue
		}
		containers[i].Runtime = in.runtime
		containers[i].RestartPolicy = in.restartPolicy
		containers[i].Mounts = in.mounts
	}

	slog.Debug("collected containers", slog.Int("count", len(containers)))
	return containers
}

func (c *Collector) runtime() string {
	if c.Runtime == "" {
		return DefaultRuntime
	}
	return c.Runtime
}

func (c *Collector) run(ctx context.Context, args ...string) (*runner.Result, error) {
	r := c.Runner
	if r == nil {
		r = runner.NewExecRunner()
	}
	return r.Run(ctx, c.runtime(), args...)
}

// runChecked runs a subcommand and treats a non-zero exit as an error.
func (c *Collector) runChecked(ctx context.Context, args ...string) (string, error) {
	res, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if !res.Success() {
		return "", fmt.Errorf("%s %s failed: %s", c.runtime(), args[0], res.StderrString())
	}
	return res.StdoutString(), nil
}

func (c *Collector) list(ctx context.Context) ([]measurement.Container, error) {
	out, err := c.runChecked(ctx, "ps", "-a", "--format", listFormat)
	if err != nil {
		return nil, err
	}

	containers := []measurement.Container{}
	for _, line := range nonEmptyLines(out) {
		fields := strings.Split(line, "\t")
		if len(fields) < listFieldCount {
			fallback.Row(collectorName, line, fmt.Sprintf("expected %d fields, got %d", listFieldCount, len(fields)))
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		containers = append(containers, measurement.Container{
			ID:        fields[0],
			Name:      fields[1],
			Image:     fields[2],
			Status:    measurement.ParseContainerStatus(fields[3]),
			StateText: fields[4],
			Ports:     splitPorts(fields[5]),
			Created:   fields[6],
			Mounts:    []string{},
		})
	}

	return containers, nil
}

func (c *Collector) stats(ctx context.Context) map[string]stats {
	result := map[string]stats{}

	out, err := c.runChecked(ctx, "stats", "--no-stream", "--format", statsFormat)
	if err != nil {
		fallback.Source(statsName, err)
		return result
	}

	for _, line := range nonEmptyLines(out) {
		fields := strings.Split(line, "\t")
		if len(fields) < statsFieldCount {
			fallback.Row(collectorName, line, fmt.Sprintf("expected %d stats fields, got %d", statsFieldCount, len(fields)))
			continue
		}

		var s stats
		s.cpuPct = units.ParsePercent(fields[1])
		if used, limit, ok := units.SplitPair(fields[2]); ok {
			s.memUsage = units.ParseSize(used)
			s.memLimit = units.ParseSize(limit)
		}
		if rx, tx, ok := units.SplitPair(fields[3]); ok {
			s.netRxBytes = units.ParseSize(rx)
			s.netTxBytes = units.ParseSize(tx)
		}
		result[strings.TrimSpace(fields[0])] = s
	}

	return result
}

func (c *Collector) inspect(ctx context.Context, id string) (inspect, error) {
	out, err := c.runChecked(ctx, "inspect", id, "--format", inspectFormat)
	if err != nil {
		return inspect{}, err
	}

	fields := strings.SplitN(strings.TrimSpace(out), "\t", 3)
	in := inspect{mounts: []string{}}
	if len(fields) > 0 {
		in.runtime = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		in.restartPolicy = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		in.mounts = parseMounts(strings.TrimSpace(fields[2]))
	}
	return in, nil
}

// parseMounts renders the runtime's mount list as "source:destination"
// entries. Entries missing either path are dropped; malformed JSON yields
// no mounts.
func parseMounts(raw string) []string {
	result := []string{}
	if raw == "" {
		return result
	}

	var mounts []map[string]any
	if err := json.Unmarshal([]byte(raw), &mounts); err != nil {
		fallback.Field(collectorName, "mounts", raw)
		return result
	}

	for _, m := range mounts {
		src, ok := m["Source"].(string)
		if !ok {
			continue
		}
		dst, ok := m["Destination"].(string)
		if !ok {
			continue
		}
		result = append(result, src+":"+dst)
	}
	return result
}

func splitPorts(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ", ")
}

func anyRunning(containers []measurement.Container) bool {
	for _, c := range containers {
		if c.Status == measurement.ContainerStatusRunning {
			return true
		}
	}
	return false
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}
