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

package host

import (
	"context"
	"strconv"
	"strings"

	"github.com/NVIDIA/spark-console/pkg/collector/fallback"
	"github.com/NVIDIA/spark-console/pkg/collector/file"
	"github.com/NVIDIA/spark-console/pkg/errors"
	"github.com/NVIDIA/spark-console/pkg/measurement"

	"github.com/docker/go-units"
)

const (
	// DefaultMemInfoPath is the kernel memory statistics pseudo-file.
	DefaultMemInfoPath = "/proc/meminfo"

	memoryCollectorName = "memory"

	keyMemTotal     = "MemTotal"
	keyMemAvailable = "MemAvailable"
	keySwapTotal    = "SwapTotal"
	keySwapFree     = "SwapFree"
)

// MemoryCollector reads RAM and swap usage.
type MemoryCollector struct {
	Path string
}

// MockMemory is returned when the memory source is unavailable.
func MockMemory() measurement.Memory {
	const (
		total = 128 * units.GiB
		used  = 48 * units.GiB
	)
	return measurement.Memory{
		TotalBytes:     total,
		UsedBytes:      used,
		AvailableBytes: total - used,
		SwapTotalBytes: 8 * units.GiB,
		SwapUsedBytes:  512 * units.MiB,
	}
}

// Collect returns the current memory usage. Used values are derived from
// the totals and never underflow.
func (c *MemoryCollector) Collect(ctx context.Context) measurement.Memory {
	if err := ctx.Err(); err != nil {
		fallback.Source(memoryCollectorName, err)
		return MockMemory()
	}

	info, err := readMemInfo(c.path())
	if err != nil {
		fallback.Source(memoryCollectorName, err)
		return MockMemory()
	}

	return measurement.NewMemory(
		memInfoBytes(info, keyMemTotal),
		memInfoBytes(info, keyMemAvailable),
		memInfoBytes(info, keySwapTotal),
		memInfoBytes(info, keySwapFree),
	)
}

func (c *MemoryCollector) path() string {
	if c.Path == "" {
		return DefaultMemInfoPath
	}
	return c.Path
}

// ReadMemTotalMiB returns MemTotal from a meminfo file in MiB.
// An empty path reads the default location.
func ReadMemTotalMiB(path string) (uint64, error) {
	if path == "" {
		path = DefaultMemInfoPath
	}

	info, err := readMemInfo(path)
	if err != nil {
		return 0, err
	}

	raw, ok := info[keyMemTotal]
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeNotFound,
			"MemTotal not present", map[string]any{"path": path})
	}
	kb, err := parseKB(raw)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse MemTotal", err)
	}
	return kb / 1024, nil
}

func readMemInfo(path string) (map[string]string, error) {
	return file.NewParser(file.WithKVDelimiter(":")).GetMap(path)
}

// memInfoBytes converts a "<n> kB" meminfo value to bytes. Missing keys
// read as zero; unparsable values are reported and read as zero.
func memInfoBytes(info map[string]string, key string) uint64 {
	raw, ok := info[key]
	if !ok {
		return 0
	}
	kb, err := parseKB(raw)
	if err != nil {
		fallback.Field(memoryCollectorName, key, raw)
		return 0
	}
	return kb * units.KiB
}

func parseKB(raw string) (uint64, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidRequest, "empty value")
	}
	return strconv.ParseUint(fields[0], 10, 64)
}
