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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/NVIDIA/spark-console/pkg/errors"
	"github.com/NVIDIA/spark-console/pkg/measurement"

	"gopkg.in/yaml.v3"
)

func sampleContainers() []measurement.Container {
	return []measurement.Container{
		{ID: "abc123", Name: "vllm", Image: "vllm/vllm-openai:latest", Status: measurement.ContainerStatusRunning},
		{ID: "def456", Name: "ollama", Image: "ollama/ollama", Status: measurement.ContainerStatusStopped},
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), sampleContainers()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []measurement.Container
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0].Name != "vllm" {
		t.Errorf("unexpected data: %+v", result)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	data := map[string]any{"kind": "ContainerList", "count": 2}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal YAML: %v", err)
	}
	if result["kind"] != "ContainerList" {
		t.Errorf("unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), sampleContainers()); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "[0].Name", "vllm", "[1].Status", "Stopped"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "[0].ID") > strings.Index(out, "[1].ID") {
		t.Error("expected rows sorted by key")
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), []measurement.Container{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_EmbeddedFlattened(t *testing.T) {
	type inner struct{ Kind string }
	type outer struct {
		inner
		Inner inner
		Data  int
	}

	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(outer{Inner: inner{Kind: "x"}, Data: 1}), "")

	if flat["Inner.Kind"] != "x" || flat["Data"] != 1 {
		t.Errorf("unexpected flattening: %v", flat)
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriter(FormatJSON, &bytes.Buffer{}).Serialize(ctx, 1)
	if !errors.IsCode(err, errors.ErrCodeTimeout) {
		t.Errorf("expected timeout code, got %v", err)
	}
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	if w.format != FormatJSON {
		t.Errorf("expected json, got %s", w.format)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" table ", FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	if err := w.Serialize(context.Background(), map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(content), `"a": "b"`) {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestNewFileWriterOrStdout_FallsBackToStdout(t *testing.T) {
	for _, path := range []string{"", "  ", filepath.Join(t.TempDir(), "missing", "dir", "out.json")} {
		w := NewFileWriterOrStdout(FormatJSON, path)
		if w.output != os.Stdout {
			t.Errorf("path %q: expected stdout fallback", path)
		}
		if w.closer != nil {
			t.Errorf("path %q: expected no closer", path)
		}
	}
}
