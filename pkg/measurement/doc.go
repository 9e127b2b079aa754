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

// Package measurement defines the records produced by the collectors.
//
// # Overview
//
// Every record is a plain value snapshot created fresh on each collection
// call. Records carry no identity beyond their fields and collectors keep
// no reference to them once returned, so callers own the result.
//
// # Host Records
//
//   - SystemSnapshot: aggregate of GPU, Memory, CPU, Disk and Uptime
//   - GPU / GPUProcess: vendor tool readings and active compute processes
//   - Memory: RAM and swap totals in bytes
//   - CPU: 1, 5 and 15 minute load averages
//   - Disk: capacity of a single mount point
//   - Uptime: whole seconds since boot
//
// A SystemSnapshot is always fully populated: each field holds either a
// real reading or the documented fallback record for that source.
//
// # Workload Records
//
//   - Container: merged view of the runtime's list, stats and inspect output
//   - ContainerStatus: closed set of lifecycle states
//   - ContainerAction / ContainerActionResult: lifecycle requests and outcomes
//   - ModelEntry: a model weight file discovered on disk
//
// # Derived Values
//
// Usage values are derived as total minus available and saturate at zero:
//
//	used := measurement.SaturatingSub(total, available)
package measurement
