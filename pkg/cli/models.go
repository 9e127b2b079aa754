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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/spark-console/pkg/collector/model"
	"github.com/NVIDIA/spark-console/pkg/config"
	"github.com/NVIDIA/spark-console/pkg/defaults"
	"github.com/NVIDIA/spark-console/pkg/header"
)

func modelsCmd(newFactory factoryFunc) *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "Inventory model files on local disk",
		Description: `Walk the configured model directories and list files with a known
model extension. Missing directories are skipped.

Override the directories for one run with --dir:

  spark models --dir /data/models --dir ~/checkpoints`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "dir",
				Usage: "Directory to scan, may be repeated (default: configured roots)",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "File extension to include without the dot, may be repeated",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			if dirs := cmd.StringSlice("dir"); len(dirs) > 0 {
				cfg.Models.Roots = model.ExpandRoots(dirs)
			}
			if exts := cmd.StringSlice("ext"); len(exts) > 0 {
				cfg.Models.Extensions = exts
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.ModelScanTimeout)
			defer cancel()

			return writeDocument(ctx, cmd, header.KindModelInventory, newFactory(cfg).CreateModelScanner().Collect(ctx))
		},
	}
}
