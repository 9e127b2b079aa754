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

	"github.com/NVIDIA/spark-console/pkg/collector"
	"github.com/NVIDIA/spark-console/pkg/config"
	"github.com/NVIDIA/spark-console/pkg/header"
	"github.com/NVIDIA/spark-console/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format (json, yaml, table)",
	}
)

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// loadFactory loads the configuration named by --config and builds the
// collector factory from it.
func loadFactory(cmd *cli.Command, newFactory factoryFunc) (*config.Config, collector.Factory, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	return cfg, newFactory(cfg), nil
}

// writeDocument wraps data in a console document and writes it to --output
// in --format.
func writeDocument(ctx context.Context, cmd *cli.Command, kind header.Kind, data any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer w.Close()

	return w.Serialize(ctx, header.NewDocument(kind, version, data))
}
