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

// Package config loads console configuration from a YAML file with
// environment overrides.
//
// Resolution order, later wins:
//  1. Built-in defaults
//  2. The YAML file named by --config or SPARK_CONFIG, if it exists
//  3. Environment variables: PORT, SPARK_CONTAINER_RUNTIME, SPARK_MODEL_DIRS
//
// A missing file is not an error; the defaults are used and a warning is
// logged. A file that exists but cannot be parsed is an error.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NVIDIA/spark-console/pkg/collector"
	"github.com/NVIDIA/spark-console/pkg/collector/container"
	"github.com/NVIDIA/spark-console/pkg/collector/gpu"
	"github.com/NVIDIA/spark-console/pkg/collector/host"
	"github.com/NVIDIA/spark-console/pkg/collector/model"
	"github.com/NVIDIA/spark-console/pkg/defaults"
	"github.com/NVIDIA/spark-console/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvConfig           = "SPARK_CONFIG"
	EnvPort             = "PORT"
	EnvContainerRuntime = "SPARK_CONTAINER_RUNTIME"
	EnvModelDirs        = "SPARK_MODEL_DIRS"
)

// Config is the top-level console configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	GPU        GPUConfig        `yaml:"gpu"`
	Host       HostConfig       `yaml:"host"`
	Containers ContainersConfig `yaml:"containers"`
	Models     model.Config     `yaml:"models"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address        string  `yaml:"address"`
	Port           int     `yaml:"port"`
	RateLimit      float64 `yaml:"rate_limit"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// GPUConfig configures the GPU collector.
type GPUConfig struct {
	Command string `yaml:"command"`
}

// HostConfig locates the host pseudo-files and the reported filesystem.
type HostConfig struct {
	LoadAvgPath string `yaml:"loadavg_path"`
	MemInfoPath string `yaml:"meminfo_path"`
	UptimePath  string `yaml:"uptime_path"`
	MountPoint  string `yaml:"mount_point"`
}

// ContainersConfig configures the container collector.
type ContainersConfig struct {
	Runtime string `yaml:"runtime"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           defaults.ServerPort,
			RateLimit:      defaults.RateLimit,
			RateLimitBurst: defaults.RateLimitBurst,
		},
		GPU: GPUConfig{Command: gpu.DefaultCommand},
		Host: HostConfig{
			LoadAvgPath: host.DefaultLoadAvgPath,
			MemInfoPath: host.DefaultMemInfoPath,
			UptimePath:  host.DefaultUptimePath,
			MountPoint:  host.DefaultMountPoint,
		},
		Containers: ContainersConfig{Runtime: container.DefaultRuntime},
		Models: model.Config{
			Roots:      append([]string(nil), model.DefaultRoots...),
			Extensions: append([]string(nil), model.DefaultExtensions...),
		},
	}
}

// Load resolves the configuration from path, falling back to SPARK_CONFIG
// when path is empty, then applies environment overrides and validates.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.Models.Roots = model.ExpandRoots(cfg.Models.Roots)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			slog.Warn("config file not found, using defaults", slog.String("path", path))
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read config %q", path), err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("failed to parse config %q", filepath.Base(path)), err)
	}

	slog.Debug("loaded config file", slog.String("path", path))
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid port", err,
				map[string]any{"env": EnvPort, "value": v})
		}
		c.Server.Port = port
	}

	if v := os.Getenv(EnvContainerRuntime); v != "" {
		c.Containers.Runtime = v
	}

	if v := os.Getenv(EnvModelDirs); v != "" {
		var roots []string
		for _, r := range filepath.SplitList(v) {
			if r = strings.TrimSpace(r); r != "" {
				roots = append(roots, r)
			}
		}
		c.Models.Roots = roots
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.RateLimit <= 0 {
		problems = append(problems, "server.rate_limit must be positive")
	}
	if c.Server.RateLimitBurst < 1 {
		problems = append(problems, "server.rate_limit_burst must be at least 1")
	}
	if c.GPU.Command == "" {
		problems = append(problems, "gpu.command is required")
	}
	if c.Containers.Runtime == "" {
		problems = append(problems, "containers.runtime is required")
	}
	for _, ext := range c.Models.Extensions {
		if ext == "" || strings.HasPrefix(ext, ".") {
			problems = append(problems, fmt.Sprintf("models.extensions entry %q must be a bare extension", ext))
		}
	}

	if len(problems) > 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"invalid configuration: "+strings.Join(problems, "; "),
			map[string]any{"problems": problems})
	}
	return nil
}

// FactoryOptions returns collector factory options matching c.
func (c *Config) FactoryOptions() []collector.Option {
	return []collector.Option{
		collector.WithGPUCommand(c.GPU.Command),
		collector.WithContainerRuntime(c.Containers.Runtime),
		collector.WithHostPaths(c.Host.LoadAvgPath, c.Host.MemInfoPath, c.Host.UptimePath),
		collector.WithDiskMountPoint(c.Host.MountPoint),
		collector.WithModelConfig(c.Models),
	}
}
