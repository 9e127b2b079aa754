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

import "strings"

// ContainerStatus is the lifecycle state of a container.
type ContainerStatus string

// String returns the string representation of the ContainerStatus.
func (s ContainerStatus) String() string {
	if s == "" {
		return string(ContainerStatusUnknown)
	}
	return string(s)
}

const (
	ContainerStatusRunning    ContainerStatus = "Running"
	ContainerStatusStopped    ContainerStatus = "Stopped"
	ContainerStatusRestarting ContainerStatus = "Restarting"
	ContainerStatusPaused     ContainerStatus = "Paused"
	ContainerStatusDead       ContainerStatus = "Dead"
	ContainerStatusUnknown    ContainerStatus = "Unknown"
)

// ContainerStatuses is the list of all container states.
var ContainerStatuses = []ContainerStatus{
	ContainerStatusRunning,
	ContainerStatusStopped,
	ContainerStatusRestarting,
	ContainerStatusPaused,
	ContainerStatusDead,
	ContainerStatusUnknown,
}

// ParseContainerStatus maps a runtime state string to a ContainerStatus.
// Matching is case-insensitive and anything unrecognized maps to Unknown.
func ParseContainerStatus(state string) ContainerStatus {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "running":
		return ContainerStatusRunning
	case "exited":
		return ContainerStatusStopped
	case "restarting":
		return ContainerStatusRestarting
	case "paused":
		return ContainerStatusPaused
	case "dead":
		return ContainerStatusDead
	default:
		return ContainerStatusUnknown
	}
}

// Container is the merged view of a single container across the list,
// stats and inspect phases of collection.
type Container struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	Image            string          `json:"image" yaml:"image"`
	Status           ContainerStatus `json:"status" yaml:"status"`
	StateText        string          `json:"state_text" yaml:"state_text"`
	CPUPct           float64         `json:"cpu_pct" yaml:"cpu_pct"`
	MemoryUsageBytes uint64          `json:"memory_usage_bytes" yaml:"memory_usage_bytes"`
	MemoryLimitBytes uint64          `json:"memory_limit_bytes" yaml:"memory_limit_bytes"`
	NetRxBytes       uint64          `json:"net_rx_bytes" yaml:"net_rx_bytes"`
	NetTxBytes       uint64          `json:"net_tx_bytes" yaml:"net_tx_bytes"`
	Ports            []string        `json:"ports" yaml:"ports"`
	Runtime          string          `json:"runtime" yaml:"runtime"`
	RestartPolicy    string          `json:"restart_policy" yaml:"restart_policy"`
	Created          string          `json:"created" yaml:"created"`
	Mounts           []string        `json:"mounts" yaml:"mounts"`
}

// Supported container lifecycle actions.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionRestart = "restart"
)

// IsValidAction reports whether action is one of the permitted lifecycle actions.
func IsValidAction(action string) bool {
	switch action {
	case ActionStart, ActionStop, ActionRestart:
		return true
	default:
		return false
	}
}

// ContainerAction requests a lifecycle action on a container.
type ContainerAction struct {
	ContainerID string `json:"container_id" yaml:"container_id"`
	Action      string `json:"action" yaml:"action"`
}

// ContainerActionResult describes the outcome of a ContainerAction.
type ContainerActionResult struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}
