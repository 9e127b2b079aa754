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

// Package units parses the human-readable numeric tokens emitted by the
// external tools the collectors shell out to.
//
// # Sizes
//
// ParseSize converts strings such as "3.578MiB", "121.7GiB", "15.6kB" or
// "126B" into a byte count. Units are resolved through a lookup table:
//
//	B             1
//	kB, KB        1000
//	MB            1000^2
//	GB            1000^3
//	TB            1000^4
//	KiB           1024
//	MiB           1024^2
//	GiB           1024^3
//	TiB           1024^4
//
// Decimal suffixes use decimal multipliers and binary suffixes use binary
// multipliers, matching the container runtime's own formatting. Unknown or
// missing suffixes are treated as raw bytes. Fractional bytes are truncated.
// ParseSize never fails: an empty or unparsable value yields zero.
//
// # Vendor fields
//
// ParseVendorField handles GPU vendor tool values, which may be reported as
// "[N/A]" or "N/A" when the hardware does not expose the metric. Those are
// reported as absent, which callers must keep distinct from a measured zero:
//
//	v, ok := units.ParseVendorField(" [N/A] ")  // 0, false
//	v, ok = units.ParseVendorField("42")        // 42, true
package units
