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

package collector

import (
	"context"

	"github.com/NVIDIA/spark-console/pkg/measurement"
)

// Collector gathers a point-in-time reading of type T.
// Implementations never fail; they return a placeholder instead.
type Collector[T any] interface {
	Collect(ctx context.Context) T
}

// ContainerManager lists containers and runs lifecycle actions on them.
type ContainerManager interface {
	Collector[[]measurement.Container]
	Execute(ctx context.Context, req measurement.ContainerAction) measurement.ContainerActionResult
}
