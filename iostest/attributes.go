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

// Attributes holds the declared configuration of one test target.  It is
// populated before assembly starts and read-only afterwards.  Attribute
// presence and typing are the loader's concern, not assembly's.
type Attributes struct {
	// Name is the target's label, used to key diagnostics.
	Name string

	// XCTest selects the hosted unit test mode: the target is linked as
	// a loadable bundle and run inside the application named by
	// XCTestApp.  When false the target is a self-contained test
	// application with its own entry point.
	XCTest bool

	// XCTestApp is the label of the host application dependency.  Only
	// meaningful when XCTest is set.
	XCTestApp string

	// Srcs and NonArcSrcs are the declared source files.
	Srcs       []string
	NonArcSrcs []string

	// Plugins are labels of test plugin dependencies, forwarded to the
	// test-support subsystem.
	Plugins []string

	// TargetDevice is the label of the device the test should run on.
	TargetDevice string
}

// Config holds the slice of the active build configuration that test
// assembly reads.
type Config struct {
	// Architectures are the architectures the build was requested for.
	Architectures []string

	// MinOSVersion is the minimum OS version the produced bundle
	// declares.
	MinOSVersion string

	// RunMemleaks links in the leak-checking library, which pauses the
	// test after the run so leaks can be collected.
	RunMemleaks bool
}
