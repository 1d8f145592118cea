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

// Bundle directory templates.  %s is the target's bundle name.
const (
	AppBundleDirFormat    = "Payload/%s.app"
	XCTestBundleDirFormat = "%s.xctest"
)

// LinkConfiguration holds the extra linker arguments, extra link inputs
// and bundle directory template implied by a build mode.  It is derived
// once per target; compile/link and release bundling must both receive
// the same value so the linked binary and the produced bundle agree on
// shape.
type LinkConfiguration struct {
	ExtraArgs       []string
	ExtraInputs     []Artifact
	BundleDirFormat string
}

// deriveLinkConfiguration produces the link configuration for a mode.
// For HostedUnitTest the caller must have resolved the host application
// already; assembly stops earlier when it cannot be.
func deriveLinkConfiguration(mode BuildMode, hostApp *HostAppResult) LinkConfiguration {
	if mode != HostedUnitTest {
		return LinkConfiguration{BundleDirFormat: AppBundleDirFormat}
	}

	// -bundle links the binary as a loadable bundle that needs no entry
	// point (no main()).  -bundle_loader makes ld resolve otherwise
	// missing symbols against the host application binary.
	return LinkConfiguration{
		ExtraArgs: []string{
			"-bundle",
			"-bundle_loader", hostApp.LinkedBinary.ExecPath(),
		},
		ExtraInputs:     []Artifact{hostApp.LinkedBinary},
		BundleDirFormat: XCTestBundleDirFormat,
	}
}
