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

package container

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/NVIDIA/spark-console/pkg/measurement"
	"github.com/NVIDIA/spark-console/pkg/runner"
	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		req         measurement.ContainerAction
		script      func(*runner.Fake)
		wantSuccess bool
		wantMessage string
		wantCalls   []string
	}{
		{
			name:        "start succeeds",
			req:         measurement.ContainerAction{ContainerID: "abc123", Action: "start"},
			script:      func(f *runner.Fake) { f.Add("docker start abc123", runner.Result{}) },
			wantSuccess: true,
			wantMessage: "docker start abc123 succeeded",
			wantCalls:   []string{"docker start abc123"},
		},
		{
			name:        "restart succeeds",
			req:         measurement.ContainerAction{ContainerID: "web", Action: "restart"},
			script:      func(f *runner.Fake) { f.Add("docker restart web", runner.Result{Stdout: []byte("web\n")}) },
			wantSuccess: true,
			wantMessage: "docker restart web succeeded",
			wantCalls:   []string{"docker restart web"},
		},
		{
			name: "stop fails with stderr",
			req:  measurement.ContainerAction{ContainerID: "gone", Action: "stop"},
			script: func(f *runner.Fake) {
				f.Add("docker stop gone", runner.Result{ExitCode: 1, Stderr: []byte("Error response from daemon: No such container: gone\n")})
			},
			wantSuccess: false,
			wantMessage: "docker stop failed: Error response from daemon: No such container: gone",
			wantCalls:   []string{"docker stop gone"},
		},
		{
			name: "launch failure",
			req:  measurement.ContainerAction{ContainerID: "abc", Action: "start"},
			script: func(f *runner.Fake) {
				f.AddError("docker start", stderrors.New("exec: \"docker\": executable file not found in $PATH"))
			},
			wantSuccess: false,
			wantMessage: "failed to run docker start: exec: \"docker\": executable file not found in $PATH",
			wantCalls:   []string{"docker start abc"},
		},
		{
			name:        "unknown action rejected",
			req:         measurement.ContainerAction{ContainerID: "abc123", Action: "delete"},
			wantSuccess: false,
			wantMessage: "unknown action: delete",
		},
		{
			name:        "action is case sensitive",
			req:         measurement.ContainerAction{ContainerID: "abc123", Action: "START"},
			wantSuccess: false,
			wantMessage: "unknown action: START",
		},
		{
			name:        "empty id rejected",
			req:         measurement.ContainerAction{Action: "stop"},
			wantSuccess: false,
			wantMessage: "container id is required",
		},
		{
			name:        "flag-like id rejected",
			req:         measurement.ContainerAction{ContainerID: "--help", Action: "stop"},
			wantSuccess: false,
			wantMessage: "invalid container id: --help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := runner.NewFake()
			if tt.script != nil {
				tt.script(f)
			}

			res := (&Collector{Runner: f}).Execute(context.Background(), tt.req)

			assert.Equal(t, tt.wantSuccess, res.Success)
			assert.Equal(t, tt.wantMessage, res.Message)
			if tt.wantCalls == nil {
				assert.Empty(t, f.Calls(), "no process should be launched")
			} else {
				assert.Equal(t, tt.wantCalls, f.Calls())
			}
		})
	}
}
