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

package iostest

import "fmt"

// BuildMode classifies how a test target is linked and bundled.  It is
// decided once per target and every mode-specific branch in assembly
// switches on it, so the link step and the bundling step cannot fall out
// of sync.
type BuildMode int

const (
	// Application is a self-contained test: it has its own entry point
	// and produces an installable application bundle.
	Application BuildMode = iota

	// HostedUnitTest is linked as a loadable bundle with no entry point.
	// Symbols missing from the bundle resolve against the binary of a
	// separate host application.
	HostedUnitTest
)

func (m BuildMode) String() string {
	switch m {
	case Application:
		return "application"
	case HostedUnitTest:
		return "hosted_unit_test"
	default:
		panic(fmt.Errorf("invalid BuildMode %d", int(m)))
	}
}

// ProductType returns the IDE product-type identifier for the mode.
func (m BuildMode) ProductType() string {
	if m == HostedUnitTest {
		return "com.apple.product-type.bundle.unit-test"
	}
	return "com.apple.product-type.application"
}

// ClassifyMode decides the build mode of a target.  It reads exactly the
// xctest attribute and has no side effects.
func ClassifyMode(attrs Attributes) BuildMode {
	if attrs.XCTest {
		return HostedUnitTest
	}
	return Application
}
