// Copyright 2026 Google Inc. All rights reserved.
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

package targetfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redwrasse/bazel/iostest"
)

const validFile = `
config:
  architectures: [arm64]
  min_os_version: "9.0"
  run_memleaks: true
targets:
  - name: //test:app
    srcs: [app_test.m]
  - name: //test:unit
    xctest: true
    xctest_app: //app:host
    srcs: [unit_test.m]
    non_arc_srcs: [legacy_test.m]
    plugins: [//plugin:mock]
    target_device: //device:iphone
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(validFile))
	require.NoError(t, err)

	assert.Equal(t, iostest.Config{
		Architectures: []string{"arm64"},
		MinOSVersion:  "9.0",
		RunMemleaks:   true,
	}, f.Config.BuildConfig())

	attrs := f.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, iostest.Attributes{
		Name: "//test:app",
		Srcs: []string{"app_test.m"},
	}, attrs[0])
	assert.Equal(t, iostest.Attributes{
		Name:         "//test:unit",
		XCTest:       true,
		XCTestApp:    "//app:host",
		Srcs:         []string{"unit_test.m"},
		NonArcSrcs:   []string{"legacy_test.m"},
		Plugins:      []string{"//plugin:mock"},
		TargetDevice: "//device:iphone",
	}, attrs[1])
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Targets)
	assert.Empty(t, f.Attributes())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknownField",
			data:    "targets:\n  - name: //test:t\n    xctst: true\n",
			wantErr: "field xctst not found",
		},
		{
			name:    "missingName",
			data:    "targets:\n  - srcs: [a.m]\n",
			wantErr: "missing name",
		},
		{
			name:    "duplicateName",
			data:    "targets:\n  - name: //test:t\n  - name: //test:t\n",
			wantErr: `target "//test:t" declared twice`,
		},
		{
			name:    "notYAML",
			data:    "targets: [}",
			wantErr: "parsing target file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validFile), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Targets, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
