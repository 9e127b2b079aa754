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

// Package server provides the HTTP server behind the console API.
//
// The server is transport only. Callers register domain handlers keyed by
// ServeMux pattern and the server wraps each of them in a middleware chain:
//
//	metrics → API version → request ID → panic recovery → rate limit → body limit → logging
//
// The health, readiness and Prometheus endpoints are registered outside the
// chain so probes are never rate limited:
//
//	GET /health    liveness
//	GET /ready     503 until Start is called and again once shutdown begins
//	GET /metrics   Prometheus exposition
//
// A "GET /{$}" handler listing the registered routes is added unless the
// caller supplies its own root handler. Requests no route accepts get a
// JSON 405 with an Allow header when another method would match, and a
// JSON 404 otherwise.
//
// # Usage
//
//	s := server.New(
//		server.WithName("sparkd"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"GET /api/v1/system": h.System,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// Run blocks until ctx is canceled or SIGINT/SIGTERM arrives and then shuts
// down within Config.ShutdownTimeout, which SHUTDOWN_TIMEOUT_SECONDS
// overrides.
//
// # Errors
//
// Failed requests receive an ErrorResponse. WriteErrorFromErr maps a
// StructuredError code to the HTTP status:
//
//	INVALID_REQUEST      400
//	NOT_FOUND            404
//	METHOD_NOT_ALLOWED   405
//	RATE_LIMIT_EXCEEDED  429
//	SERVICE_UNAVAILABLE  503
//	TIMEOUT              504
//	INTERNAL             500
//
// Every response carries X-Request-Id. A client supplied X-Request-Id is
// kept when it is a valid UUID.
package server
