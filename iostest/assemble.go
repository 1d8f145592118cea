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

// Package iostest assembles the build description of a single mobile test
// target: it classifies the target's build mode, derives the matching
// link configuration, invokes the collaborating subsystems in a fixed
// sequence, and merges their contributions into one immutable target
// description.
//
// Assembly is synchronous and holds no state outside one Assemble call,
// so independent targets may be assembled concurrently.
package iostest

import (
	"github.com/redwrasse/bazel/diag"
	"github.com/redwrasse/bazel/provider"
)

// xctestSDKFramework is linked implicitly by every hosted unit test.
const xctestSDKFramework = "XCTest"

// Assemble produces the build description for one test target.
//
// The collaborator sequence is fixed because later steps consume earlier
// outputs: common library, validation, link configuration, compile/link
// and release bundling (both with the identical LinkConfiguration),
// resource validation, IDE project export, test support, aggregation.
//
// User-facing problems go to sink and do not stop assembly, with one
// exception: a hosted unit test whose host application cannot be resolved
// has no link configuration, so Assemble reports MissingHostAppError and
// returns a nil description without registering any actions.  A non-nil
// error is always an *InternalConsistencyError, meaning a contract
// violation between subsystems; the description is withheld entirely.
//
// Given identical attributes, configuration and collaborator responses,
// the returned description is identical, including iteration order of
// files-to-build and descriptors.
func Assemble(attrs Attributes, cfg Config, resolver DependencyResolver, sink diag.Sink) (*TargetDescription, error) {
	mode := ClassifyMode(attrs)

	var hostApp *HostAppResult
	var extraSDKFrameworks []string
	var extraDeps []ObjcInfo
	hostAppMissing := false
	if mode == HostedUnitTest {
		extraSDKFrameworks = []string{xctestSDKFramework}
		if h, ok := resolver.HostApp(attrs); ok {
			hostApp = &h
			extraDeps = append(extraDeps, h.ObjcInfo)
		} else {
			hostAppMissing = true
		}
	}
	if cfg.RunMemleaks {
		if info, ok := resolver.MemleaksLibrary(); ok {
			extraDeps = append(extraDeps, info)
		}
	}

	common := resolver.ResolveCommonLibrary(attrs, extraSDKFrameworks, extraDeps)

	for _, err := range validateTarget(common, cfg) {
		sink.Report(attrs.Name, diag.Error, err)
	}

	if hostAppMissing {
		sink.Report(attrs.Name, diag.Error, &MissingHostAppError{Target: attrs.Name, HostApp: attrs.XCTestApp})
		return nil, nil
	}

	link := deriveLinkConfiguration(mode, hostApp)

	contributions := []Contribution{{
		Subsystem: "objc_common",
		Files:     common.ResourceOutputs,
		Providers: singletonBag(ObjcInfoKey, common.ObjcInfo),
	}}

	ideInfo := XcodeInfo{ProductType: mode.ProductType()}
	if mode == HostedUnitTest {
		ideInfo.TestHost = attrs.XCTestApp
		contributions = append(contributions, Contribution{
			Subsystem: "xctest_host",
			Files:     []Artifact{hostApp.IPA},
		})
	}

	// Compile/link and release bundling get the same link configuration
	// value so the linked binary and the produced bundle cannot diverge.
	compile := resolver.RegisterCompileAndLink(common.ObjcInfo, link, DsymTest)
	bundling := resolver.RegisterReleaseBundling(attrs, common.ObjcInfo, link, cfg.MinOSVersion)
	resources := resolver.RegisterResourceValidation(attrs)
	ide := resolver.RegisterIdeProjectExport(attrs, ideInfo)
	testSupport := resolver.RegisterTestSupport(attrs)

	testBag := provider.NewBag()
	mustSet(testBag, RunfilesInfoKey, testSupport.Runfiles)
	mustSet(testBag, InstrumentedFilesInfoKey, testSupport.InstrumentedFiles)

	contributions = append(contributions,
		Contribution{Subsystem: "compile_and_link", Providers: compile.Providers},
		Contribution{Subsystem: "release_bundling", Files: bundling.Files, Providers: bundling.Providers},
		Contribution{Subsystem: "resource_validation", Providers: resources.Providers},
		Contribution{Subsystem: "ide_project", Files: ide.Files, Providers: ide.Providers},
		Contribution{Subsystem: "test_support", Files: testSupport.Files, Providers: testBag},
		Contribution{Subsystem: "test_support_extra", Providers: testSupport.Extra},
		Contribution{Subsystem: "execution_requirements", Providers: singletonBag(ExecutionInfoKey, ExecutionInfo{
			Requirements: map[string]string{RequiresDarwin: ""},
		})},
	)

	return aggregate(attrs.Name, contributions, testSupport.Executable)
}

// singletonBag returns a fresh bag holding one descriptor.
func singletonBag[T any](key provider.Key[T], value T) *provider.Bag {
	b := provider.NewBag()
	mustSet(b, key, value)
	return b
}

// mustSet stores a descriptor in a bag this package just created, where
// the kind cannot already be present.
func mustSet[T any](b *provider.Bag, key provider.Key[T], value T) {
	if err := provider.Set(b, key, value); err != nil {
		panic(err)
	}
}
