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

// Package host collects scalar host readings: load averages, memory, disk
// capacity and uptime.
//
// Each collector reads exactly one source and never fails. When the source
// is missing or malformed the collector reports the event through the
// fallback package and returns a fixed placeholder record, so callers
// always receive a fully populated value. A single unparsable numeric
// field degrades to zero without discarding the rest of the record.
//
// Sources are plain struct fields so tests can point collectors at fixture
// files:
//
//	c := &host.MemoryCollector{Path: "testdata/meminfo"}
//	m := c.Collect(ctx)
package host
