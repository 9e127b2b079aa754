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

// Package api exposes the console over HTTP.
//
// Serve loads configuration, installs the structured logger and runs a
// pkg/server instance with the handlers below registered behind its
// middleware chain:
//
//	GET  /api/v1/system                 composite SystemSnapshot
//	GET  /api/v1/system/{field}         one of gpu, memory, cpu, disk, uptime
//	GET  /api/v1/containers             container list with live stats
//	POST /api/v1/containers/action      {"container_id": "...", "action": "start|stop|restart"}
//	GET  /api/v1/models                 model file inventory
//
// Read endpoints never fail: a collector that cannot reach its source
// reports placeholder values, as the collector packages document. The
// action endpoint always answers 200 with a ContainerActionResult, whose
// success flag carries the outcome; only a malformed body is rejected with
// 400.
//
// Each handler bounds its work with the matching timeout from pkg/defaults.
//
// Usage:
//
//	func main() {
//		if err := api.Serve(context.Background(), ""); err != nil {
//			log.Fatal(err)
//		}
//	}
package api
