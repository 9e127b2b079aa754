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

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/spark-console/pkg/defaults"
	"github.com/NVIDIA/spark-console/pkg/header"
	"github.com/NVIDIA/spark-console/pkg/measurement"
)

func containersCmd(newFactory factoryFunc) *cli.Command {
	return &cli.Command{
		Name:  "containers",
		Usage: "List containers with live resource usage",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			_, f, err := loadFactory(cmd, newFactory)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.ContainerHandlerTimeout)
			defer cancel()

			return writeDocument(ctx, cmd, header.KindContainerList, f.CreateContainerManager().Collect(ctx))
		},
	}
}

func containerActionCmd(newFactory factoryFunc) *cli.Command {
	actions := strings.Join([]string{measurement.ActionStart, measurement.ActionStop, measurement.ActionRestart}, ", ")

	return &cli.Command{
		Name:      "container-action",
		Usage:     "Start, stop or restart a container",
		ArgsUsage: "<action> <container-id>",
		Description: fmt.Sprintf(`Run a lifecycle action against one container. Supported actions: %s.

The result document is always written; the command exits non-zero when the
action did not succeed.

  spark container-action restart vllm`, actions),
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("expected <action> <container-id>, got %d argument(s)", cmd.NArg())
			}
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			_, f, err := loadFactory(cmd, newFactory)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.ContainerActionTimeout)
			defer cancel()

			result := f.CreateContainerManager().Execute(ctx, measurement.ContainerAction{
				Action:      cmd.Args().Get(0),
				ContainerID: cmd.Args().Get(1),
			})
			if err := writeDocument(ctx, cmd, header.KindContainerActionResult, result); err != nil {
				return err
			}
			if !result.Success {
				return cli.Exit(result.Message, 1)
			}
			return nil
		},
	}
}
