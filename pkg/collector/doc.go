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

// Package collector provides the interfaces and factory for gathering host
// and workload state.
//
// # Overview
//
// Collectors read one source each: a kernel pseudo-file, a filesystem, the
// GPU vendor tool, the container runtime CLI or a directory tree of model
// files. Every collector degrades instead of failing. When its source is
// unavailable it returns a documented placeholder and records the event
// through the fallback package, so Collect has no error return.
//
// # Core Interface
//
//	type Collector[T any] interface {
//	    Collect(ctx context.Context) T
//	}
//
// The container collector additionally executes lifecycle actions through
// the ContainerManager interface.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector creation:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithContainerRuntime("podman"),
//	    collector.WithModelConfig(model.Config{Roots: []string{"/srv/models"}}),
//	)
//	gpu := factory.CreateGPUCollector().Collect(ctx)
//
// Tests substitute a scripted runner so no real processes are spawned:
//
//	factory := collector.NewDefaultFactory(collector.WithRunner(runner.NewFake()))
//
// # Subpackages
//
//   - collector/host - load average, memory, disk and uptime
//   - collector/gpu - nvidia-smi readings with unified-memory fallback
//   - collector/container - container listing and lifecycle actions
//   - collector/model - model file inventory
//   - collector/file - line-oriented pseudo-file parser
//   - collector/fallback - degraded-read logging and counters
package collector
