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

package units

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/docker/go-units"
)

// sizeMultipliers maps a unit suffix to its byte multiplier.
var sizeMultipliers = map[string]float64{
	"B":   1,
	"kB":  units.KB,
	"KB":  units.KB,
	"MB":  units.MB,
	"GB":  units.GB,
	"TB":  units.TB,
	"KiB": units.KiB,
	"MiB": units.MiB,
	"GiB": units.GiB,
	"TiB": units.TiB,
}

// Multiplier returns the byte multiplier for the given unit suffix.
// Unknown suffixes resolve to 1.
func Multiplier(unit string) float64 {
	if m, ok := sizeMultipliers[strings.TrimSpace(unit)]; ok {
		return m
	}
	return 1
}

// ParseSize parses a size string like "3.578MiB" into bytes.
// Returns 0 for empty input or when the numeric part cannot be parsed.
func ParseSize(s string) uint64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	unitStart := strings.IndexFunc(s, unicode.IsLetter)
	if unitStart < 0 {
		unitStart = len(s)
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(s[:unitStart]), 64)
	if err != nil || math.IsNaN(num) || num < 0 {
		return 0
	}

	v := num * Multiplier(s[unitStart:])
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

// SplitPair splits a "used / limit" style value into its two halves.
// Returns false if the separator is missing.
func SplitPair(s string) (string, string, bool) {
	left, right, ok := strings.Cut(s, "/")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(left), strings.TrimSpace(right), true
}

// ParsePercent parses a percentage like "12.5%" into 12.5.
// Unparsable values yield 0.
func ParsePercent(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}
