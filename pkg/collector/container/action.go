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

package container

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/spark-console/pkg/measurement"
)

// Execute runs a lifecycle action against a single container. Only start,
// stop and restart are permitted; anything else is rejected without
// launching a process. The result message carries the runtime's stderr on
// failure.
func (c *Collector) Execute(ctx context.Context, req measurement.ContainerAction) measurement.ContainerActionResult {
	if !measurement.IsValidAction(req.Action) {
		containerActionTotal.WithLabelValues("invalid", "rejected").Inc()
		return measurement.ContainerActionResult{
			Success: false,
			Message: fmt.Sprintf("unknown action: %s", req.Action),
		}
	}
	if req.ContainerID == "" {
		containerActionTotal.WithLabelValues(req.Action, "rejected").Inc()
		return measurement.ContainerActionResult{
			Success: false,
			Message: "container id is required",
		}
	}

	if strings.HasPrefix(req.ContainerID, "-") {
		containerActionTotal.WithLabelValues(req.Action, "rejected").Inc()
		return measurement.ContainerActionResult{
			Success: false,
			Message: fmt.Sprintf("invalid container id: %s", req.ContainerID),
		}
	}

	rt := c.runtime()
	res, err := c.run(ctx, req.Action, req.ContainerID)
	if err != nil {
		containerActionTotal.WithLabelValues(req.Action, "failed").Inc()
		slog.Error("container action could not be launched",
			slog.String("action", req.Action),
			slog.String("id", req.ContainerID),
			slog.String("error", err.Error()))
		return measurement.ContainerActionResult{
			Success: false,
			Message: fmt.Sprintf("failed to run %s %s: %v", rt, req.Action, err),
		}
	}

	if !res.Success() {
		containerActionTotal.WithLabelValues(req.Action, "failed").Inc()
		slog.Warn("container action failed",
			slog.String("action", req.Action),
			slog.String("id", req.ContainerID),
			slog.Int("exitCode", res.ExitCode))
		return measurement.ContainerActionResult{
			Success: false,
			Message: fmt.Sprintf("%s %s failed: %s", rt, req.Action, res.StderrString()),
		}
	}

	containerActionTotal.WithLabelValues(req.Action, "success").Inc()
	slog.Info("container action succeeded",
		slog.String("action", req.Action),
		slog.String("id", req.ContainerID))
	return measurement.ContainerActionResult{
		Success: true,
		Message: fmt.Sprintf("%s %s %s succeeded", rt, req.Action, req.ContainerID),
	}
}
