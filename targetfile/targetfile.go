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

// Package targetfile loads YAML files that declare test targets and the
// active build configuration, and converts them into assembly inputs.
package targetfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redwrasse/bazel/iostest"
)

// File is the parsed form of one target file.
type File struct {
	Config  ConfigSpec   `yaml:"config"`
	Targets []TargetSpec `yaml:"targets"`
}

// ConfigSpec declares the active build configuration.
type ConfigSpec struct {
	Architectures []string `yaml:"architectures"`
	MinOSVersion  string   `yaml:"min_os_version"`
	RunMemleaks   bool     `yaml:"run_memleaks"`
}

// TargetSpec declares one test target.
type TargetSpec struct {
	Name         string   `yaml:"name"`
	XCTest       bool     `yaml:"xctest"`
	XCTestApp    string   `yaml:"xctest_app"`
	Srcs         []string `yaml:"srcs"`
	NonArcSrcs   []string `yaml:"non_arc_srcs"`
	Plugins      []string `yaml:"plugins"`
	TargetDevice string   `yaml:"target_device"`
}

// Parse decodes and validates a target file.  Unknown fields are
// rejected, so typos in attribute names fail loading instead of silently
// using defaults.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing target file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the target file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Targets))
	for i, t := range f.Targets {
		if t.Name == "" {
			return fmt.Errorf("target %d: missing name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("target %q declared twice", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// BuildConfig converts the configuration declaration to assembly form.
func (c ConfigSpec) BuildConfig() iostest.Config {
	return iostest.Config{
		Architectures: c.Architectures,
		MinOSVersion:  c.MinOSVersion,
		RunMemleaks:   c.RunMemleaks,
	}
}

// Attributes converts every declared target to assembly form, in
// declaration order.
func (f *File) Attributes() []iostest.Attributes {
	attrs := make([]iostest.Attributes, len(f.Targets))
	for i, t := range f.Targets {
		attrs[i] = iostest.Attributes{
			Name:         t.Name,
			XCTest:       t.XCTest,
			XCTestApp:    t.XCTestApp,
			Srcs:         t.Srcs,
			NonArcSrcs:   t.NonArcSrcs,
			Plugins:      t.Plugins,
			TargetDevice: t.TargetDevice,
		}
	}
	return attrs
}
