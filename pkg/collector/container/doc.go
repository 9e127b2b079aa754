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

// Package container lists containers through the container runtime CLI and
// executes lifecycle actions on them.
//
// # Collection Phases
//
// Collect joins three views of the runtime's state:
//
//  1. List: docker ps -a with a tab-separated template yields identity,
//     image, state, ports and creation time for every container.
//  2. Stats: docker stats --no-stream, issued only when at least one
//     container is running, yields CPU, memory and network counters keyed
//     by container name.
//  3. Inspect: docker inspect, issued once per container id in list order,
//     yields the OCI runtime, restart policy and mounts.
//
// Stats are joined by name and inspect data by id. A failure in the stats
// or inspect phase only leaves the affected fields at their zero values;
// fields from the list phase are never discarded. A failed list phase
// yields an empty result.
//
// # Actions
//
// Execute runs start, stop or restart against a single container. Any
// other action is rejected without launching a process:
//
//	res := c.Execute(ctx, measurement.ContainerAction{ContainerID: "abc123", Action: "restart"})
//	if !res.Success {
//	    log.Print(res.Message)
//	}
package container
