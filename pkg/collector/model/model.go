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

// Package model inventories model weight files on local disk.
//
// The scanner walks a configured set of root directories, including
// subdirectories, and reports every file whose extension is in an
// allow-list. Missing or unreadable directories are skipped. Symbolic links
// are followed: linked files are reported using the target's size and
// linked directories are walked. Each resolved directory is visited once,
// so link cycles terminate.
//
// Results are sorted by name, then path, so repeated scans of an unchanged
// tree return identical output.
package model

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/spark-console/pkg/measurement"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DefaultRoots are scanned when no roots are configured. Entries
	// starting with "~/" are resolved against the user's home directory.
	DefaultRoots = []string{
		"/opt/models",
		"~/.cache/huggingface/hub",
		"~/.ollama/models",
	}

	// DefaultExtensions are the recognized model file extensions.
	DefaultExtensions = []string{"gguf", "safetensors", "bin", "pt", "pth", "onnx", "ckpt"}
)

var (
	scanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spark_model_scan_duration_seconds",
			Help:    "Time taken to scan the model directories",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	modelCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "spark_models",
			Help: "Number of model files found by the last scan",
		},
	)
)

// Config selects what the scanner looks at.
type Config struct {
	Roots      []string `json:"roots" yaml:"roots"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// DefaultConfig returns the default roots and extensions with home
// directory references resolved.
func DefaultConfig() Config {
	return Config{
		Roots:      ExpandRoots(DefaultRoots),
		Extensions: slices.Clone(DefaultExtensions),
	}
}

// ExpandRoots resolves a leading "~/" in each root. Roots that need a home
// directory are dropped when it cannot be determined.
func ExpandRoots(roots []string) []string {
	home, homeErr := os.UserHomeDir()

	result := make([]string, 0, len(roots))
	for _, r := range roots {
		if rest, ok := strings.CutPrefix(r, "~/"); ok {
			if homeErr != nil {
				slog.Debug("skipping model root, home directory unknown",
					slog.String("root", r),
					slog.String("error", homeErr.Error()))
				continue
			}
			r = filepath.Join(home, rest)
		}
		result = append(result, r)
	}
	return result
}

// Scanner walks model directories.
type Scanner struct {
	Config Config
}

// NewScanner returns a Scanner using cfg. Empty fields fall back to the
// defaults.
func NewScanner(cfg Config) *Scanner {
	def := DefaultConfig()
	if len(cfg.Roots) == 0 {
		cfg.Roots = def.Roots
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	return &Scanner{Config: cfg}
}

// Collect returns every model file under the configured roots. It never
// fails; a canceled context ends the walk early with what was found.
func (s *Scanner) Collect(ctx context.Context) []measurement.ModelEntry {
	start := time.Now()
	defer func() {
		scanDuration.Observe(time.Since(start).Seconds())
	}()

	allowed := make(map[string]bool, len(s.Config.Extensions))
	for _, ext := range s.Config.Extensions {
		allowed[ext] = true
	}

	entries := []measurement.ModelEntry{}
	visited := map[string]bool{}
	for _, root := range s.Config.Roots {
		entries = s.scan(ctx, root, allowed, visited, entries)
	}

	measurement.SortModelEntries(entries)
	modelCount.Set(float64(len(entries)))
	slog.Debug("scanned model directories",
		slog.Int("roots", len(s.Config.Roots)),
		slog.Int("models", len(entries)))

	return entries
}

func (s *Scanner) scan(ctx context.Context, root string, allowed, visited map[string]bool, entries []measurement.ModelEntry) []measurement.ModelEntry {
	stack := []string{root}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return entries
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil || visited[resolved] {
			continue
		}
		visited[resolved] = true

		children, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, child := range children {
			path := filepath.Join(dir, child.Name())

			if isDir(child, path) {
				stack = append(stack, path)
				continue
			}

			stem, ext, ok := splitExt(child.Name())
			if !ok || !allowed[ext] {
				continue
			}

			// os.Stat follows symlinks so linked files report their target size.
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}

			entries = append(entries, newEntry(path, stem, ext, info))
		}
	}

	return entries
}

// isDir reports whether the entry is a directory or a link to one.
func isDir(child fs.DirEntry, path string) bool {
	if child.IsDir() {
		return true
	}
	if child.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func newEntry(path, stem, ext string, info fs.FileInfo) measurement.ModelEntry {
	if stem == "" {
		stem = "unknown"
	}

	var modified string
	if mt := info.ModTime(); !mt.IsZero() && mt.Unix() >= 0 {
		modified = strconv.FormatInt(mt.Unix(), 10)
	}

	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}

	return measurement.ModelEntry{
		Name:      stem,
		Path:      path,
		SizeBytes: size,
		Format:    strings.ToUpper(ext),
		Modified:  modified,
	}
}

// splitExt splits a file name into stem and extension. Dot files without a
// further dot have no extension.
func splitExt(name string) (string, string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
