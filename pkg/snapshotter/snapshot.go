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

package snapshotter

import (
	"context"
	"log/slog"
	"time"

	"github.com/NVIDIA/spark-console/pkg/collector"
	"github.com/NVIDIA/spark-console/pkg/measurement"

	"golang.org/x/sync/errgroup"
)

// SystemSnapshotter assembles a SystemSnapshot from the scalar collectors.
type SystemSnapshotter struct {
	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory
}

// New returns a SystemSnapshotter backed by f.
func New(f collector.Factory) *SystemSnapshotter {
	return &SystemSnapshotter{Factory: f}
}

// Collect runs the GPU, memory, CPU, disk and uptime collectors
// concurrently and waits for all of them. The snapshot is always fully
// populated; a collector whose source is unavailable contributes its
// placeholder reading.
func (s *SystemSnapshotter) Collect(ctx context.Context) *measurement.SystemSnapshot {
	if s.Factory == nil {
		s.Factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting system snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
		snapshotCollectionTotal.Inc()
	}()

	snap := &measurement.SystemSnapshot{}

	// Each goroutine owns exactly one field of snap.
	var g errgroup.Group

	g.Go(func() error {
		defer observe("gpu", time.Now())
		snap.GPU = s.Factory.CreateGPUCollector().Collect(ctx)
		return nil
	})

	g.Go(func() error {
		defer observe("memory", time.Now())
		snap.Memory = s.Factory.CreateMemoryCollector().Collect(ctx)
		return nil
	})

	g.Go(func() error {
		defer observe("cpu", time.Now())
		snap.CPU = s.Factory.CreateCPUCollector().Collect(ctx)
		return nil
	})

	g.Go(func() error {
		defer observe("disk", time.Now())
		snap.Disk = s.Factory.CreateDiskCollector().Collect(ctx)
		return nil
	})

	g.Go(func() error {
		defer observe("uptime", time.Now())
		snap.Uptime = s.Factory.CreateUptimeCollector().Collect(ctx)
		return nil
	})

	// Collectors never fail, so Wait only joins.
	_ = g.Wait()

	slog.Debug("system snapshot collected",
		slog.String("gpu", snap.GPU.Name),
		slog.Duration("duration", time.Since(start)))

	return snap
}

func observe(name string, start time.Time) {
	snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
