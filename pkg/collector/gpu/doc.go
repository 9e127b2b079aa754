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

// Package gpu collects utilization, temperature, memory and power readings
// for the primary NVIDIA GPU, plus the compute processes holding GPU memory.
//
// # nvidia-smi Dependency
//
// The collector shells out to nvidia-smi in query mode for machine-readable
// output:
//
//	nvidia-smi --query-gpu=name,utilization.gpu,temperature.gpu,memory.used,memory.total,power.draw --format=csv,noheader,nounits
//	nvidia-smi --query-compute-apps=pid,process_name,used_gpu_memory --format=csv,noheader,nounits
//
// Only the first GPU row is reported. When nvidia-smi is missing, exits
// non-zero, or prints fewer than six fields, the collector returns a fixed
// placeholder GPU record instead of failing.
//
// # Unified Memory
//
// On unified-memory systems (for example Grace Blackwell parts) the driver
// has no dedicated VRAM and reports memory.total as "[N/A]". The collector
// then reads MemTotal from /proc/meminfo, reports it in MiB, and sets
// UnifiedMemory on the result:
//
//	g := (&gpu.Collector{Runner: runner.NewExecRunner()}).Collect(ctx)
//	if g.UnifiedMemory {
//	    fmt.Printf("%d MiB shared with host\n", g.MemoryTotalMiB)
//	}
//
// # Context Support
//
// nvidia-smi execution is bounded by the context deadline. A canceled
// context yields the placeholder record.
package gpu
