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

package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NVIDIA/spark-console/pkg/errors"
)

// Fake is a scripted Runner for tests. Responses are matched by the longest
// registered prefix of the full command line. Unmatched commands fail as if
// the tool were not installed.
type Fake struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	result Result
	err    error
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{responses: make(map[string]fakeResponse)}
}

// Add registers a result for commands starting with prefix.
func (f *Fake) Add(prefix string, result Result) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[prefix] = fakeResponse{result: result}
	return f
}

// AddError registers a launch failure for commands starting with prefix.
func (f *Fake) AddError(prefix string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[prefix] = fakeResponse{err: err}
	return f
}

// Run implements Runner.
func (f *Fake) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	line := CommandLine(name, args...)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, line)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "command canceled: "+name, err)
	}

	best := ""
	var resp fakeResponse
	found := false
	for prefix, r := range f.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) >= len(best) {
			best, resp, found = prefix, r, true
		}
	}
	if !found {
		return nil, errors.New(errors.ErrCodeUnavailable, fmt.Sprintf("executable not found: %s", name))
	}
	if resp.err != nil {
		return nil, resp.err
	}

	res := resp.result
	return &res, nil
}

// Calls returns the command lines run so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}
