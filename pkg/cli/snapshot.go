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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/spark-console/pkg/defaults"
	"github.com/NVIDIA/spark-console/pkg/header"
	"github.com/NVIDIA/spark-console/pkg/snapshotter"
)

func snapshotCmd(newFactory factoryFunc) *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Capture a system snapshot",
		Description: `Capture GPU, memory, CPU load, root filesystem and uptime readings
in one concurrent pass. Sources that cannot be read are reported with
placeholder values rather than failing the command.

Use --field to capture a single reading:

  spark snapshot --field gpu --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "field",
				Usage: "Capture only one reading (gpu, memory, cpu, disk, uptime)",
			},
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

			ctx, cancel := context.WithTimeout(ctx, defaults.SystemHandlerTimeout)
			defer cancel()

			field := cmd.String("field")
			if field == "" {
				return writeDocument(ctx, cmd, header.KindSystemSnapshot, snapshotter.New(f).Collect(ctx))
			}

			var data any
			switch field {
			case "gpu":
				data = f.CreateGPUCollector().Collect(ctx)
			case "memory":
				data = f.CreateMemoryCollector().Collect(ctx)
			case "cpu":
				data = f.CreateCPUCollector().Collect(ctx)
			case "disk":
				data = f.CreateDiskCollector().Collect(ctx)
			case "uptime":
				data = f.CreateUptimeCollector().Collect(ctx)
			default:
				return fmt.Errorf("unknown field %q (supported: gpu, memory, cpu, disk, uptime)", field)
			}
			return writeDocument(ctx, cmd, header.KindSystemSnapshot, data)
		},
	}
}
