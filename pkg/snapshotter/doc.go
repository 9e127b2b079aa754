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

// Package snapshotter assembles point-in-time system snapshots.
//
// SystemSnapshotter fans the GPU, memory, CPU, disk and uptime collectors
// out concurrently, waits for all five, and returns one fully populated
// measurement.SystemSnapshot. It never returns a partial snapshot and never
// fails: each collector substitutes a placeholder for a source it cannot
// read.
//
// # Usage
//
//	s := snapshotter.New(collector.NewDefaultFactory())
//	snap := s.Collect(ctx)
//	fmt.Printf("load %.2f, %d MiB GPU memory\n", snap.CPU.Load1m, snap.GPU.MemoryTotalMiB)
//
// There is no internal timeout. Callers that need one wrap ctx:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//	snap := s.Collect(ctx)
//
// For output, NewReport wraps a snapshot in a kind/apiVersion header:
//
//	apiVersion: spark.nvidia.com/v1
//	kind: SystemSnapshot
//	metadata:
//	  timestamp: 2025-01-15T10:30:00Z
//	  version: v1.0.0
//	snapshot:
//	  gpu:
//	    name: NVIDIA GB10
//	    unified_memory: true
//	  ...
//
// # Observability
//
// The snapshotter exports Prometheus metrics:
//   - spark_snapshot_collection_duration_seconds: Total time to collect a snapshot
//   - spark_snapshot_collection_total: Number of snapshots collected
//   - spark_snapshot_collector_duration_seconds{collector}: Per-collector timing
package snapshotter
