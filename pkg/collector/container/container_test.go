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
	"strings"
	"testing"

	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(lines ...string) runner.Result {
	return runner.Result{Stdout: []byte(strings.Join(lines, "\n") + "\n")}
}

func row(fields ...string) string {
	return strings.Join(fields, "\t")
}

const (
	listCmd  = "docker ps -a"
	statsCmd = "docker stats --no-stream"
)

func TestCollect_MergesAllPhases(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(
			row("abc123", "web", "nginx:1.27", "running", "Up 2 hours", "0.0.0.0:80->80/tcp, :::80->80/tcp", "2025-01-02 10:00:00 +0000 UTC"),
			row("def456", "batch", "python:3.12", "exited", "Exited (0) 3 days ago", "", "2024-12-30 08:00:00 +0000 UTC"),
		)).
		Add(statsCmd, ok(
			row("web", "12.5%", "3.578MiB / 121.7GiB", "15.6kB / 126B"),
		)).
		Add("docker inspect abc123", ok(row("nvidia", "unless-stopped", `[{"Type":"bind","Source":"/data","Destination":"/usr/share/nginx/html"}]`))).
		Add("docker inspect def456", ok(row("runc", "no", `[]`)))

	got := (&Collector{Runner: f}).Collect(context.Background())
	require.Len(t, got, 2)

	web := got[0]
	assert.Equal(t, "abc123", web.ID)
	assert.Equal(t, "web", web.Name)
	assert.Equal(t, "nginx:1.27", web.Image)
	assert.Equal(t, measurement.ContainerStatusRunning, web.Status)
	assert.Equal(t, "Up 2 hours", web.StateText)
	assert.Equal(t, []string{"0.0.0.0:80->80/tcp", ":::80->80/tcp"}, web.Ports)
	assert.Equal(t, 12.5, web.CPUPct)
	assert.Equal(t, uint64(3751804), web.MemoryUsageBytes)
	assert.Equal(t, uint64(130674379980), web.MemoryLimitBytes)
	assert.Equal(t, uint64(15600), web.NetRxBytes)
	assert.Equal(t, uint64(126), web.NetTxBytes)
	assert.Equal(t, "nvidia", web.Runtime)
	assert.Equal(t, "unless-stopped", web.RestartPolicy)
	assert.Equal(t, []string{"/data:/usr/share/nginx/html"}, web.Mounts)

	batch := got[1]
	assert.Equal(t, measurement.ContainerStatusStopped, batch.Status)
	assert.Empty(t, batch.Ports)
	assert.NotNil(t, batch.Ports)
	assert.Zero(t, batch.CPUPct)
	assert.Equal(t, "runc", batch.Runtime)
	assert.Empty(t, batch.Mounts)

	assert.Equal(t, []string{
		"docker ps -a --format " + listFormat,
		"docker stats --no-stream --format " + statsFormat,
		"docker inspect abc123 --format " + inspectFormat,
		"docker inspect def456 --format " + inspectFormat,
	}, f.Calls())
}

func TestCollect_SkipsShortRowsPreservingOrder(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(
			row("a1", "first", "img", "exited", "Exited", "", "t1"),
			row("broken", "row"),
			row("c3", "third", "img", "paused", "Paused", "", "t3"),
		)).
		Add("docker inspect", ok(row("runc", "no", "[]")))

	got := (&Collector{Runner: f}).Collect(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "third", got[1].Name)
	assert.Equal(t, measurement.ContainerStatusPaused, got[1].Status)
}

func TestCollect_NoRunningContainersSkipsStats(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(row("a1", "first", "img", "exited", "Exited", "", "t1"))).
		Add("docker inspect", ok(row("runc", "no", "[]")))

	(&Collector{Runner: f}).Collect(context.Background())

	for _, call := range f.Calls() {
		assert.NotContains(t, call, "stats")
	}
}

func TestCollect_StatsUnavailable(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(row("abc123", "web", "nginx", "running", "Up", "", "t"))).
		Add(statsCmd, runner.Result{ExitCode: 1, Stderr: []byte("permission denied")}).
		Add("docker inspect", ok(row("runc", "always", "[]")))

	got := (&Collector{Runner: f}).Collect(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, measurement.ContainerStatusRunning, got[0].Status)
	assert.Zero(t, got[0].CPUPct)
	assert.Zero(t, got[0].MemoryUsageBytes)
	assert.Zero(t, got[0].NetRxBytes)
	assert.Equal(t, "always", got[0].RestartPolicy)
}

func TestCollect_ShortStatsRowsSkipped(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(
			row("a", "web", "img", "running", "Up", "", "t"),
			row("b", "db", "img", "running", "Up", "", "t"),
		)).
		Add(statsCmd, ok(
			row("web", "5%"),
			row("db", "1.5%", "1GiB / 2GiB", "--"),
		)).
		Add("docker inspect", ok(row("runc", "no", "[]")))

	got := (&Collector{Runner: f}).Collect(context.Background())

	require.Len(t, got, 2)
	assert.Zero(t, got[0].CPUPct)
	assert.Equal(t, 1.5, got[1].CPUPct)
	assert.Equal(t, uint64(1<<30), got[1].MemoryUsageBytes)
	assert.Equal(t, uint64(2<<30), got[1].MemoryLimitBytes)
	assert.Zero(t, got[1].NetRxBytes)
}

func TestCollect_InspectFailurePreservesListFields(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(row("abc123", "web", "nginx", "exited", "Exited (1)", "8080/tcp", "t"))).
		Add("docker inspect abc123", runner.Result{ExitCode: 1, Stderr: []byte("Error: No such object")})

	got := (&Collector{Runner: f}).Collect(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "web", got[0].Name)
	assert.Equal(t, "nginx", got[0].Image)
	assert.Equal(t, []string{"8080/tcp"}, got[0].Ports)
	assert.Empty(t, got[0].Runtime)
	assert.Empty(t, got[0].RestartPolicy)
	assert.Empty(t, got[0].Mounts)
}

func TestCollect_ListFailure(t *testing.T) {
	f := runner.NewFake().Add(listCmd, runner.Result{ExitCode: 1, Stderr: []byte("Cannot connect to the Docker daemon")})

	got := (&Collector{Runner: f}).Collect(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Len(t, f.Calls(), 1)
}

func TestCollect_RuntimeMissing(t *testing.T) {
	f := runner.NewFake()

	got := (&Collector{Runner: f}).Collect(context.Background())

	assert.Empty(t, got)
	assert.Len(t, f.Calls(), 1)
}

func TestCollect_CustomRuntime(t *testing.T) {
	f := runner.NewFake().
		Add("podman ps -a", ok(row("a", "web", "img", "exited", "Exited", "", "t"))).
		Add("podman inspect", ok(row("crun", "no", "[]")))

	got := (&Collector{Runner: f, Runtime: "podman"}).Collect(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "crun", got[0].Runtime)
}

func TestParseMounts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"empty array", "[]", []string{}},
		{"malformed", "[{", []string{}},
		{"null", "null", []string{}},
		{
			name: "skips entries missing a path",
			raw:  `[{"Source":"/a","Destination":"/b"},{"Destination":"/c"},{"Source":"/d","Destination":5},{"Source":"vol","Destination":"/e"}]`,
			want: []string{"/a:/b", "vol:/e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMounts(tt.raw))
		})
	}
}

// fallbackCount reads spark_collector_fallback_total for one collector and
// scope from the default registry.
func fallbackCount(t *testing.T, collector, scope string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "spark_collector_fallback_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["collector"] == collector && labels["scope"] == scope {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestCollect_StatsAndInspectFailuresAreCounted(t *testing.T) {
	f := runner.NewFake().
		Add(listCmd, ok(row("abc123", "web", "nginx:1.27", "running", "Up 2 hours", "", "2025-01-02 10:00:00 +0000 UTC"))).
		Add(statsCmd, runner.Result{ExitCode: 1, Stderr: []byte("daemon unavailable")}).
		Add("docker inspect", runner.Result{ExitCode: 1, Stderr: []byte("No such object")})

	statsBefore := fallbackCount(t, statsName, "source")
	inspectBefore := fallbackCount(t, inspectName, "source")

	got := (&Collector{Runner: f}).Collect(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, measurement.ContainerStatusRunning, got[0].Status)
	assert.Equal(t, "nginx:1.27", got[0].Image)

	assert.Equal(t, statsBefore+1, fallbackCount(t, statsName, "source"))
	assert.Equal(t, inspectBefore+1, fallbackCount(t, inspectName, "source"))
}
