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

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/spark-console/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want int
	}{
		{errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{errors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
		{errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	retryable := map[errors.ErrorCode]bool{
		errors.ErrCodeInvalidRequest:    false,
		errors.ErrCodeNotFound:          false,
		errors.ErrCodeMethodNotAllowed:  false,
		errors.ErrCodeTimeout:           true,
		errors.ErrCodeUnavailable:       true,
		errors.ErrCodeRateLimitExceeded: true,
		errors.ErrCodeInternal:          true,
		"SOMETHING_ELSE":                false,
	}
	for code, want := range retryable {
		if got := retryableFromCode(code); got != want {
			t.Errorf("retryableFromCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestMergeDetails(t *testing.T) {
	if got := mergeDetails(nil, map[string]any{}); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}

	a := map[string]any{"a": 1, "shared": "old"}
	got := mergeDetails(a, map[string]any{"b": 2, "shared": "new"})
	if got["a"] != 1 || got["b"] != 2 || got["shared"] != "new" {
		t.Fatalf("unexpected merge: %#v", got)
	}
	if a["shared"] != "old" {
		t.Fatal("expected inputs to be left untouched")
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestWriteError_UsesContextRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Code != "INVALID_REQUEST" || resp.Message != "bad request" || resp.RequestID != "req-123" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Details["k"] != "v" {
		t.Fatalf("expected details k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_Structured(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	err := errors.WrapWithContext(errors.ErrCodeUnavailable, "container runtime unavailable",
		stderrors.New("exec: docker: not found"), map[string]any{"runtime": "docker"})

	WriteErrorFromErr(rec, req, err, "fallback", map[string]any{"extra": "yes"})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Message != "container runtime unavailable" || !resp.Retryable {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Details["runtime"] != "docker" || resp.Details["extra"] != "yes" || resp.Details["error"] != "exec: docker: not found" {
		t.Fatalf("unexpected details: %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_PlainError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	WriteErrorFromErr(rec, req, stderrors.New("boom"), "fallback", nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Code != "INTERNAL" || resp.Message != "fallback" || resp.Details["error"] != "boom" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.RequestID == "" {
		t.Fatal("expected a generated request ID")
	}
}
