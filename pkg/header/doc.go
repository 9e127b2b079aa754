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

// Package header provides the resource envelope for console reports.
//
// Every report written by the CLI carries a Kubernetes-style header so
// consumers can tell a system snapshot from a container listing without
// inspecting the payload:
//
//	apiVersion: spark.nvidia.com/v1
//	kind: ContainerList
//	metadata:
//	  timestamp: 2025-01-15T10:30:00Z
//	  version: v1.0.0
//	data:
//	  - id: abc123
//	    name: web
//
// # Usage
//
//	doc := header.NewDocument(header.KindModelInventory, version, entries)
//	err := serializer.NewStdoutWriter(serializer.FormatYAML).Serialize(ctx, doc)
package header
