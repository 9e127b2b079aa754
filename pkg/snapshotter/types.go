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

package snapshotter

import (
	"context"

	"github.com/NVIDIA/spark-console/pkg/header"
	"github.com/NVIDIA/spark-console/pkg/measurement"
)

// FullAPIVersion is the apiVersion stamped on snapshot reports.
const FullAPIVersion = header.APIVersion

// Collector produces system snapshots.
type Collector interface {
	Collect(ctx context.Context) *measurement.SystemSnapshot
}

// Report is a snapshot wrapped in a resource header for output.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Snapshot *measurement.SystemSnapshot `json:"snapshot" yaml:"snapshot"`
}

// NewReport wraps snap with a SystemSnapshot header.
func NewReport(version string, snap *measurement.SystemSnapshot) *Report {
	r := &Report{Snapshot: snap}
	r.Init(header.KindSystemSnapshot, FullAPIVersion, version)
	return r
}
