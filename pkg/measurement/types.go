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

package measurement

// SystemSnapshot is a point-in-time aggregate of the scalar host readings.
type SystemSnapshot struct {
	GPU    GPU    `json:"gpu" yaml:"gpu"`
	Memory Memory `json:"memory" yaml:"memory"`
	CPU    CPU    `json:"cpu" yaml:"cpu"`
	Disk   Disk   `json:"disk" yaml:"disk"`
	Uptime Uptime `json:"uptime" yaml:"uptime"`
}

// GPU holds the vendor tool readings for the primary GPU.
// When UnifiedMemory is set, MemoryTotalMiB was sourced from host RAM
// because the vendor tool does not report a dedicated VRAM total.
type GPU struct {
	Name           string       `json:"name" yaml:"name"`
	UtilizationPct float64      `json:"utilization_pct" yaml:"utilization_pct"`
	TemperatureC   uint32       `json:"temperature_c" yaml:"temperature_c"`
	MemoryUsedMiB  uint64       `json:"memory_used_mib" yaml:"memory_used_mib"`
	MemoryTotalMiB uint64       `json:"memory_total_mib" yaml:"memory_total_mib"`
	PowerDrawW     float64      `json:"power_draw_w" yaml:"power_draw_w"`
	UnifiedMemory  bool         `json:"unified_memory" yaml:"unified_memory"`
	Processes      []GPUProcess `json:"processes" yaml:"processes"`
}

// GPUProcess is a compute process holding GPU memory.
type GPUProcess struct {
	PID       uint32 `json:"pid" yaml:"pid"`
	Name      string `json:"name" yaml:"name"`
	MemoryMiB uint64 `json:"memory_mib" yaml:"memory_mib"`
}

// Memory holds RAM and swap usage in bytes.
type Memory struct {
	TotalBytes     uint64 `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes" yaml:"used_bytes"`
	AvailableBytes uint64 `json:"available_bytes" yaml:"available_bytes"`
	SwapTotalBytes uint64 `json:"swap_total_bytes" yaml:"swap_total_bytes"`
	SwapUsedBytes  uint64 `json:"swap_used_bytes" yaml:"swap_used_bytes"`
}

// CPU holds the system load averages.
type CPU struct {
	Load1m  float64 `json:"load_1m" yaml:"load_1m"`
	Load5m  float64 `json:"load_5m" yaml:"load_5m"`
	Load15m float64 `json:"load_15m" yaml:"load_15m"`
}

// Disk holds capacity information for a single mount point.
type Disk struct {
	TotalBytes     uint64 `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes      uint64 `json:"used_bytes" yaml:"used_bytes"`
	AvailableBytes uint64 `json:"available_bytes" yaml:"available_bytes"`
	MountPoint     string `json:"mount_point" yaml:"mount_point"`
}

// Uptime is the number of whole seconds since boot.
type Uptime struct {
	Seconds uint64 `json:"seconds" yaml:"seconds"`
}

// NewMemory builds a Memory record from raw totals, deriving the used values.
func NewMemory(total, available, swapTotal, swapFree uint64) Memory {
	return Memory{
		TotalBytes:     total,
		UsedBytes:      SaturatingSub(total, available),
		AvailableBytes: available,
		SwapTotalBytes: swapTotal,
		SwapUsedBytes:  SaturatingSub(swapTotal, swapFree),
	}
}

// NewDisk builds a Disk record from raw totals, deriving the used value.
func NewDisk(mountPoint string, total, available uint64) Disk {
	return Disk{
		TotalBytes:     total,
		UsedBytes:      SaturatingSub(total, available),
		AvailableBytes: available,
		MountPoint:     mountPoint,
	}
}

// SaturatingSub returns a-b, or 0 when b exceeds a.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
