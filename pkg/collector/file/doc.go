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

// Package file reads small line-oriented kernel and configuration files
// such as /proc/loadavg, /proc/meminfo and /proc/uptime.
//
// A Parser is configured with functional options and exposes three views
// of the same content:
//
//	p := file.NewParser(file.WithKVDelimiter(":"))
//	info, err := p.GetMap("/proc/meminfo")     // "MemTotal" -> "131072000 kB"
//	fields, err := p.GetFields("/proc/loadavg") // ["2.45", "1.89", "1.32", ...]
//	lines, err := p.GetLines("/etc/os-release")
//
// Reads are bounded by a maximum size (1MB by default) and content must be
// valid UTF-8. Errors are returned as StructuredError values with
// ErrCodeNotFound for missing files and ErrCodeInvalidRequest for content
// that fails validation.
package file
