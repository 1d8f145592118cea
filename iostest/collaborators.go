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

import "github.com/redwrasse/bazel/provider"

// DsymKind selects the debug-symbol output flavor registered alongside a
// linked binary.
type DsymKind string

// DsymTest is the flavor test targets register.
const DsymTest DsymKind = "test"

// CommonLibraryResult is what resolving the target's common library
// produces.
type CommonLibraryResult struct {
	// HasCompiledArchive is false when the target declared no usable
	// sources, so no archive action was registered.
	HasCompiledArchive bool

	// ObjcInfo is the library's aggregated capability descriptor.
	ObjcInfo ObjcInfo

	// ResourceOutputs are compiled resource archives (storyboards, data
	// models) that belong in files-to-build.
	ResourceOutputs []Artifact
}

// HostAppResult is the resolved host application of a hosted unit test.
type HostAppResult struct {
	// LinkedBinary is the host application's linked binary, handed to
	// the linker as the bundle loader.
	LinkedBinary Artifact

	// IPA is the host application's output archive, built alongside the
	// test bundle.
	IPA Artifact

	// ObjcInfo joins the test target's dependency descriptors so test
	// code compiles against the host's symbols.
	ObjcInfo ObjcInfo
}

// CompileAndLinkResult is returned by the compile/link subsystem after it
// registers compile, archive and link actions.
type CompileAndLinkResult struct {
	Providers *provider.Bag
}

// ReleaseBundlingResult is returned by the release-bundling subsystem
// after it registers bundling and signing actions.
type ReleaseBundlingResult struct {
	Files     []Artifact
	Providers *provider.Bag
}

// ResourceValidationResult is returned by the resource-validation
// subsystem.
type ResourceValidationResult struct {
	Providers *provider.Bag
}

// IdeProjectResult is returned by the IDE-project subsystem.
type IdeProjectResult struct {
	Files     []Artifact
	Providers *provider.Bag
}

// TestSupportResult is returned by the test-support subsystem after it
// registers the test-runner actions.
type TestSupportResult struct {
	// Executable is the generated script that runs the test.
	Executable Artifact

	// Runfiles and InstrumentedFiles become the target's built-in
	// runnable-files and coverage descriptors.
	Runfiles          RunfilesInfo
	InstrumentedFiles InstrumentedFilesInfo

	Files []Artifact

	// Extra carries open-ended descriptors specific to the test
	// environment, merged into the target by concatenation.
	Extra *provider.Bag
}

// DependencyResolver is the single gateway from test assembly to the
// subsystems it collaborates with.  Resolve* calls look up already
// analyzed dependencies.  Register* calls schedule future build actions
// and return synchronously; assembly only ever manipulates the returned
// metadata, never waits on execution.
//
// Implementations report their own attribute problems through the shared
// diagnostics sink and always return a usable result.
type DependencyResolver interface {
	// ResolveCommonLibrary builds the target's common library
	// description.  extraSDKFrameworks and extraDeps join the target's
	// declared dependencies.
	ResolveCommonLibrary(attrs Attributes, extraSDKFrameworks []string, extraDeps []ObjcInfo) CommonLibraryResult

	// HostApp resolves the host application dependency.  ok is false
	// when the dependency is missing or analysis of it failed.
	HostApp(attrs Attributes) (result HostAppResult, ok bool)

	// MemleaksLibrary resolves the implicit leak-checking library.
	MemleaksLibrary() (info ObjcInfo, ok bool)

	// RegisterCompileAndLink registers compile, archive and link actions
	// for the target using the given link configuration.
	RegisterCompileAndLink(info ObjcInfo, link LinkConfiguration, kind DsymKind) CompileAndLinkResult

	// RegisterReleaseBundling registers bundling and signing actions.
	// It must be given the same link configuration as
	// RegisterCompileAndLink.
	RegisterReleaseBundling(attrs Attributes, info ObjcInfo, link LinkConfiguration, minOSVersion string) ReleaseBundlingResult

	// RegisterResourceValidation validates the target's resource
	// attributes.
	RegisterResourceValidation(attrs Attributes) ResourceValidationResult

	// RegisterIdeProjectExport registers generation of the target's IDE
	// project entry.
	RegisterIdeProjectExport(attrs Attributes, info XcodeInfo) IdeProjectResult

	// RegisterTestSupport registers generation of the runnable test
	// entry point.
	RegisterTestSupport(attrs Attributes) TestSupportResult
}
