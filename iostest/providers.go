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

import (
	"github.com/redwrasse/bazel/nestedset"
	"github.com/redwrasse/bazel/provider"
)

// RequiresDarwin is the execution requirement every test target carries:
// the generated runner only works on a darwin host.
const RequiresDarwin = "requires-darwin"

// ObjcInfo is the capability descriptor of the target's common library:
// what dependents need in order to compile and link against it.
type ObjcInfo struct {
	// SDKFrameworks are the SDK frameworks the library links against.
	SDKFrameworks []string

	// TransitiveDeps are the archives and headers contributed by the
	// library and everything it depends on.
	TransitiveDeps nestedset.Set[Artifact]
}

// ExecutionInfo describes requirements on the machine that runs the
// target's test actions.
type ExecutionInfo struct {
	Requirements map[string]string
}

// RunfilesInfo describes the files the test needs at runtime.
type RunfilesInfo struct {
	Files nestedset.Set[Artifact]
}

// InstrumentedFilesInfo describes the sources eligible for coverage
// instrumentation.
type InstrumentedFilesInfo struct {
	Files nestedset.Set[Artifact]
}

// XcodeInfo describes the target's entry in a generated IDE project.
type XcodeInfo struct {
	// ProductType is the IDE product-type identifier, see
	// BuildMode.ProductType.
	ProductType string

	// TestHost is the label of the host application's project entry.
	// Empty for self-contained test applications.
	TestHost string
}

// BundleInfo describes the installable bundle produced by release
// bundling.
type BundleInfo struct {
	// BundleDir is the directory of the bundle inside the archive,
	// derived from the link configuration's bundle template.
	BundleDir string

	// IPA is the signed output archive.
	IPA Artifact
}

// Built-in descriptor kinds.  Each may be supplied by exactly one
// subsystem per target; the aggregator treats a duplicate as an assembly
// bug.
var (
	ObjcInfoKey              = provider.NewKey[ObjcInfo]("ObjcInfo")
	ExecutionInfoKey         = provider.NewKey[ExecutionInfo]("ExecutionInfo")
	RunfilesInfoKey          = provider.NewKey[RunfilesInfo]("RunfilesInfo")
	InstrumentedFilesInfoKey = provider.NewKey[InstrumentedFilesInfo]("InstrumentedFilesInfo")
	XcodeInfoKey             = provider.NewKey[XcodeInfo]("XcodeInfo")
	BundleInfoKey            = provider.NewKey[BundleInfo]("BundleInfo")
)
