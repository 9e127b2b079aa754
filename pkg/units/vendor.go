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
)

const notApplicable = "n/a"

// IsNotApplicable reports whether a vendor field carries no value,
// e.g. "[N/A]", "N/A" or an empty string.
func IsNotApplicable(raw string) bool {
	s := trimVendorField(raw)
	return s == "" || strings.EqualFold(s, notApplicable)
}

// ParseVendorField parses a numeric vendor tool field. Brackets,
// surrounding whitespace and a trailing unit token ("MiB", "W") are ignored.
// The second return value is false when the field is not applicable or
// cannot be parsed, which is distinct from a measured zero.
func ParseVendorField(raw string) (float64, bool) {
	if IsNotApplicable(raw) {
		return 0, false
	}

	fields := strings.Fields(trimVendorField(raw))
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func trimVendorField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "[]")
	return strings.TrimSpace(s)
}
