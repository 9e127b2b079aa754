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

// Package cli implements the spark command line interface.
//
// # Commands
//
// snapshot - capture GPU, memory, CPU, disk and uptime readings:
//
//	spark snapshot [--field gpu] [--format json] [--output snapshot.json]
//
// containers - list containers with live CPU, memory and network usage:
//
//	spark containers --format table
//
// container-action - start, stop or restart one container:
//
//	spark container-action restart vllm
//
// models - inventory model files under the configured directories:
//
//	spark models --dir /data/models --ext gguf --ext safetensors
//
// serve - run the HTTP API (same as sparkd):
//
//	spark serve --config /etc/spark/config.yaml
//
// # Global Flags
//
//	--config, -c   YAML configuration file (env SPARK_CONFIG)
//	--log-level    debug, info, warn or error (env LOG_LEVEL, default warn)
//
// # Output
//
// Every command except serve writes a document with a kind, apiVersion and
// metadata header around the data, in YAML by default:
//
//	kind: ContainerList
//	apiVersion: spark.nvidia.com/v1
//	metadata:
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.3.0
//	data:
//	  - id: 4f2a...
//
// --output writes to a file instead of stdout; --format selects json, yaml
// or table.
package cli
