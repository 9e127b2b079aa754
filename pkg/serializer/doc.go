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

// Package serializer renders console documents as JSON, YAML or a plain
// text table.
//
// The CLI writes through a Writer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//		return err
//	}
//
// HTTP handlers respond through RespondJSON, which encodes the body into a
// buffer before writing headers so an encoding failure never produces a
// partial 200 response:
//
//	serializer.RespondJSON(w, http.StatusOK, doc)
//
// # Table format
//
// The table format flattens the value into dotted keys and prints one
// FIELD/VALUE row per leaf, sorted by key. Slice elements are addressed by
// index, e.g. "Data.[0].Name". Structs are keyed by their Go field names.
package serializer
