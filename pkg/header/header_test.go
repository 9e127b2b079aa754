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

package header

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindSystemSnapshot, true},
		{KindContainerList, true},
		{KindContainerActionResult, true},
		{KindModelInventory, true},
		{Kind("Recipe"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.want {
			t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindContainerList), WithMetadata("host", "spark-01"))

	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, APIVersion)
	}
	if h.Kind != KindContainerList {
		t.Errorf("Kind = %q", h.Kind)
	}
	if h.Metadata["host"] != "spark-01" {
		t.Errorf("Metadata[host] = %q", h.Metadata["host"])
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Metadata = map[string]string{"stale": "x"}
	h.Init(KindSystemSnapshot, APIVersion, "")

	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init should reset metadata")
	}
	if h.Metadata["timestamp"] == "" {
		t.Error("expected timestamp")
	}
	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version should not be recorded")
	}
}

func TestDocument_InlinesHeader(t *testing.T) {
	doc := NewDocument(KindModelInventory, "v1.0.0", []string{"a"})

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if raw["kind"] != "ModelInventory" {
		t.Errorf("kind = %v", raw["kind"])
	}
	if _, ok := raw["Header"]; ok {
		t.Error("header should be inlined in JSON")
	}

	y, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var yraw map[string]any
	if err := yaml.Unmarshal(y, &yraw); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if yraw["apiVersion"] != APIVersion {
		t.Errorf("apiVersion = %v", yraw["apiVersion"])
	}
}
