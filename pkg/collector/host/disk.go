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

	"github.com/NVIDIA/spark-console/pkg/collector/fallback"
	"github.com/NVIDIA/spark-console/pkg/measurement"

	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v3/disk"
)

const (
	// DefaultMountPoint is the filesystem reported by the disk collector.
	DefaultMountPoint = "/"

	diskCollectorName = "disk"
)

// UsageFunc returns filesystem statistics for a path.
type UsageFunc func(ctx context.Context, path string) (*disk.UsageStat, error)

// DiskCollector reads capacity of a single mount point via statfs.
type DiskCollector struct {
	MountPoint string

	// Usage overrides the statfs call. Defaults to disk.UsageWithContext.
	Usage UsageFunc
}

// MockDisk is returned when filesystem statistics are unavailable.
func MockDisk() measurement.Disk {
	const (
		total = 2 * units.TiB
		used  = 750 * units.GiB
	)
	return measurement.Disk{
		TotalBytes:     total,
		UsedBytes:      used,
		AvailableBytes: total - used,
		MountPoint:     DefaultMountPoint,
	}
}

// Collect returns capacity for the configured mount point. Available space
// is what an unprivileged user may allocate, so used plus available can be
// less than total on filesystems with reserved blocks.
func (c *DiskCollector) Collect(ctx context.Context) measurement.Disk {
	mount := c.MountPoint
	if mount == "" {
		mount = DefaultMountPoint
	}

	usage := c.Usage
	if usage == nil {
		usage = disk.UsageWithContext
	}

	stat, err := usage(ctx, mount)
	if err != nil {
		fallback.Source(diskCollectorName, err)
		return MockDisk()
	}

	return measurement.NewDisk(mount, stat.Total, stat.Free)
}
