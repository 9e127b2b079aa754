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

package defaults

import "time"

// Collector timeouts for data collection operations.
const (
	// CollectorTimeout bounds a system snapshot.
	CollectorTimeout = 10 * time.Second

	// ContainerListTimeout bounds the list, stats and inspect phases together.
	// docker stats --no-stream alone takes around two seconds.
	ContainerListTimeout = 30 * time.Second

	// ContainerActionTimeout bounds a single start, stop or restart.
	// docker stop waits up to ten seconds before killing.
	ContainerActionTimeout = 30 * time.Second

	// ModelScanTimeout bounds a model directory walk.
	ModelScanTimeout = 60 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// SystemHandlerTimeout is the timeout for snapshot and per-field requests.
	SystemHandlerTimeout = 15 * time.Second

	// ContainerHandlerTimeout is the timeout for container list and action requests.
	ContainerHandlerTimeout = 45 * time.Second

	// ModelHandlerTimeout is the timeout for model inventory requests.
	ModelHandlerTimeout = 75 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must exceed the longest handler timeout.
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// RateLimit is the sustained request rate allowed per server.
	RateLimit = 100

	// RateLimitBurst is the burst size above RateLimit.
	RateLimitBurst = 200

	// MaxRequestBodyBytes caps POST bodies.
	MaxRequestBodyBytes = 1 << 16
)
