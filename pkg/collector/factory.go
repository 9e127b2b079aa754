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

package collector

import (
	"github.com/NVIDIA/spark-console/pkg/collector/container"
	"github.com/NVIDIA/spark-console/pkg/collector/gpu"
	"github.com/NVIDIA/spark-console/pkg/collector/host"
	"github.com/NVIDIA/spark-console/pkg/collector/model"
	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/runner"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateGPUCollector() Collector[measurement.GPU]
	CreateMemoryCollector() Collector[measurement.Memory]
	CreateCPUCollector() Collector[measurement.CPU]
	CreateDiskCollector() Collector[measurement.Disk]
	CreateUptimeCollector() Collector[measurement.Uptime]
	CreateContainerManager() ContainerManager
	CreateModelScanner() Collector[[]measurement.ModelEntry]
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithRunner sets the process runner used by the GPU and container collectors.
func WithRunner(r runner.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// WithGPUCommand overrides the GPU vendor tool.
func WithGPUCommand(cmd string) Option {
	return func(f *DefaultFactory) {
		f.GPUCommand = cmd
	}
}

// WithContainerRuntime overrides the container runtime CLI.
func WithContainerRuntime(rt string) Option {
	return func(f *DefaultFactory) {
		f.ContainerRuntime = rt
	}
}

// WithHostPaths overrides the pseudo-file locations read by the host collectors.
// Empty values keep the defaults.
func WithHostPaths(loadAvg, memInfo, uptime string) Option {
	return func(f *DefaultFactory) {
		if loadAvg != "" {
			f.LoadAvgPath = loadAvg
		}
		if memInfo != "" {
			f.MemInfoPath = memInfo
		}
		if uptime != "" {
			f.UptimePath = uptime
		}
	}
}

// WithDiskMountPoint sets the filesystem reported by the disk collector.
func WithDiskMountPoint(mount string) Option {
	return func(f *DefaultFactory) {
		f.DiskMountPoint = mount
	}
}

// WithModelConfig sets the model scanner roots and extensions.
func WithModelConfig(cfg model.Config) Option {
	return func(f *DefaultFactory) {
		f.ModelConfig = cfg
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	Runner           runner.Runner
	GPUCommand       string
	ContainerRuntime string
	LoadAvgPath      string
	MemInfoPath      string
	UptimePath       string
	DiskMountPoint   string
	ModelConfig      model.Config
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{
		Runner:           runner.NewExecRunner(),
		GPUCommand:       gpu.DefaultCommand,
		ContainerRuntime: container.DefaultRuntime,
		LoadAvgPath:      host.DefaultLoadAvgPath,
		MemInfoPath:      host.DefaultMemInfoPath,
		UptimePath:       host.DefaultUptimePath,
		DiskMountPoint:   host.DefaultMountPoint,
		ModelConfig:      model.DefaultConfig(),
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateGPUCollector creates an nvidia-smi backed GPU collector.
func (f *DefaultFactory) CreateGPUCollector() Collector[measurement.GPU] {
	return &gpu.Collector{
		Runner:      f.Runner,
		Command:     f.GPUCommand,
		MemInfoPath: f.MemInfoPath,
	}
}

// CreateMemoryCollector creates a meminfo collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector[measurement.Memory] {
	return &host.MemoryCollector{Path: f.MemInfoPath}
}

// CreateCPUCollector creates a load average collector.
func (f *DefaultFactory) CreateCPUCollector() Collector[measurement.CPU] {
	return &host.CPUCollector{Path: f.LoadAvgPath}
}

// CreateDiskCollector creates a statfs collector.
func (f *DefaultFactory) CreateDiskCollector() Collector[measurement.Disk] {
	return &host.DiskCollector{MountPoint: f.DiskMountPoint}
}

// CreateUptimeCollector creates an uptime collector.
func (f *DefaultFactory) CreateUptimeCollector() Collector[measurement.Uptime] {
	return &host.UptimeCollector{Path: f.UptimePath}
}

// CreateContainerManager creates a runtime CLI backed container manager.
func (f *DefaultFactory) CreateContainerManager() ContainerManager {
	return &container.Collector{
		Runner:  f.Runner,
		Runtime: f.ContainerRuntime,
	}
}

// CreateModelScanner creates a model inventory scanner.
func (f *DefaultFactory) CreateModelScanner() Collector[[]measurement.ModelEntry] {
	return model.NewScanner(f.ModelConfig)
}
