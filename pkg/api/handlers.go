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

package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NVIDIA/spark-console/pkg/collector"
	"github.com/NVIDIA/spark-console/pkg/defaults"
	"github.com/NVIDIA/spark-console/pkg/errors"
	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/serializer"
	"github.com/NVIDIA/spark-console/pkg/server"
	"github.com/NVIDIA/spark-console/pkg/snapshotter"
)

// System field names accepted by GET /api/v1/system/{field}.
const (
	FieldGPU    = "gpu"
	FieldMemory = "memory"
	FieldCPU    = "cpu"
	FieldDisk   = "disk"
	FieldUptime = "uptime"
)

// Handler serves the console API on top of a collector factory.
type Handler struct {
	factory     collector.Factory
	snapshotter *snapshotter.SystemSnapshotter
}

// NewHandler returns a Handler backed by f.
func NewHandler(f collector.Factory) *Handler {
	if f == nil {
		f = collector.NewDefaultFactory()
	}
	return &Handler{
		factory:     f,
		snapshotter: snapshotter.New(f),
	}
}

// Routes returns the API handlers keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /api/v1/system":             h.System,
		"GET /api/v1/system/{field}":     h.SystemField,
		"GET /api/v1/containers":         h.Containers,
		"POST /api/v1/containers/action": h.ContainerAction,
		"GET /api/v1/models":             h.Models,
	}
}

// System returns the composite snapshot.
func (h *Handler) System(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SystemHandlerTimeout)
	defer cancel()

	serializer.RespondJSON(w, http.StatusOK, h.snapshotter.Collect(ctx))
}

// SystemField returns a single reading of the snapshot.
func (h *Handler) SystemField(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SystemHandlerTimeout)
	defer cancel()

	field := r.PathValue("field")

	var data any
	switch field {
	case FieldGPU:
		data = h.factory.CreateGPUCollector().Collect(ctx)
	case FieldMemory:
		data = h.factory.CreateMemoryCollector().Collect(ctx)
	case FieldCPU:
		data = h.factory.CreateCPUCollector().Collect(ctx)
	case FieldDisk:
		data = h.factory.CreateDiskCollector().Collect(ctx)
	case FieldUptime:
		data = h.factory.CreateUptimeCollector().Collect(ctx)
	default:
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			fmt.Sprintf("unknown system field %q", field), false,
			map[string]any{"fields": []string{FieldGPU, FieldMemory, FieldCPU, FieldDisk, FieldUptime}})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, data)
}

// Containers lists containers with their stats.
func (h *Handler) Containers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ContainerHandlerTimeout)
	defer cancel()

	serializer.RespondJSON(w, http.StatusOK, h.factory.CreateContainerManager().Collect(ctx))
}

// ContainerAction runs a lifecycle action. The outcome, including a
// rejected action or a failed runtime invocation, is reported in the body
// with status 200; only an unreadable request is a 400.
func (h *Handler) ContainerAction(w http.ResponseWriter, r *http.Request) {
	var req measurement.ContainerAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		msg := "invalid container action body"
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			msg = "container action body too large"
		}
		server.WriteErrorFromErr(w, r, errors.Wrap(errors.ErrCodeInvalidRequest, msg, err), msg, nil)
		return
	}

	// Detached from the request so a client disconnect does not abort a
	// half-applied action.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), defaults.ContainerHandlerTimeout)
	defer cancel()

	start := time.Now()
	result := h.factory.CreateContainerManager().Execute(ctx, req)
	actionLatency.WithLabelValues(actionLabel(req.Action)).Observe(time.Since(start).Seconds())

	serializer.RespondJSON(w, http.StatusOK, result)
}

// Models returns the model inventory.
func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ModelHandlerTimeout)
	defer cancel()

	serializer.RespondJSON(w, http.StatusOK, h.factory.CreateModelScanner().Collect(ctx))
}
