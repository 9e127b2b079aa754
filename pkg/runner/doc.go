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

// Package runner launches external tools and captures their output.
//
// Collectors never call os/exec directly. They depend on the Runner
// interface so tests can substitute a scripted Fake:
//
//	f := runner.NewFake()
//	f.Add("docker ps -a", runner.Result{Stdout: []byte("...")})
//	c := &container.Collector{Runner: f}
//
// A launch failure (tool missing, permission denied) is returned as an
// error. A tool that ran and exited non-zero is not an error: the exit code
// and captured streams are returned in the Result so callers can decide.
package runner
