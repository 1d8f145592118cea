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

package driver

import (
	"fmt"
	"strings"

	"github.com/redwrasse/bazel/iostest"
	"github.com/redwrasse/bazel/nestedset"
	"github.com/redwrasse/bazel/provider"
)

// PlanResolver is a DependencyResolver that registers no actions: every
// response is derived from the target's labels alone.  It lets a target
// file be checked and its would-be build description printed without a
// build framework behind it.  Responses are pure functions of the
// attributes, so planned assembly stays deterministic.
type PlanResolver struct{}

var _ iostest.DependencyResolver = PlanResolver{}

// outPrefix turns a label like //pkg/sub:name into pkg/sub/name.
func outPrefix(label string) string {
	s := strings.TrimPrefix(label, "//")
	return strings.ReplaceAll(s, ":", "/")
}

// bundleName returns the last label component, the name the bundle
// directory template is instantiated with.
func bundleName(label string) string {
	if i := strings.LastIndexByte(label, ':'); i >= 0 {
		return label[i+1:]
	}
	return label
}

func (PlanResolver) ResolveCommonLibrary(attrs iostest.Attributes, extraSDKFrameworks []string, extraDeps []iostest.ObjcInfo) iostest.CommonLibraryResult {
	hasSources := len(attrs.Srcs)+len(attrs.NonArcSrcs) > 0

	deps := nestedset.NewBuilder[iostest.Artifact]()
	if hasSources {
		deps.Direct(iostest.NewArtifact(outPrefix(attrs.Name) + ".a"))
	}
	for _, d := range extraDeps {
		deps.Transitive(d.TransitiveDeps)
	}

	return iostest.CommonLibraryResult{
		HasCompiledArchive: hasSources,
		ObjcInfo: iostest.ObjcInfo{
			SDKFrameworks:  extraSDKFrameworks,
			TransitiveDeps: deps.Build(),
		},
	}
}

func (PlanResolver) HostApp(attrs iostest.Attributes) (iostest.HostAppResult, bool) {
	if attrs.XCTestApp == "" {
		return iostest.HostAppResult{}, false
	}
	binary := iostest.NewArtifact(outPrefix(attrs.XCTestApp) + "_bin")
	return iostest.HostAppResult{
		LinkedBinary: binary,
		IPA:          iostest.NewArtifact(outPrefix(attrs.XCTestApp) + ".ipa"),
		ObjcInfo: iostest.ObjcInfo{
			TransitiveDeps: nestedset.Of(binary),
		},
	}, true
}

func (PlanResolver) MemleaksLibrary() (iostest.ObjcInfo, bool) {
	return iostest.ObjcInfo{
		TransitiveDeps: nestedset.Of(iostest.NewArtifact("tools/objc/memleaks/libmemleaks.a")),
	}, true
}

func (PlanResolver) RegisterCompileAndLink(info iostest.ObjcInfo, link iostest.LinkConfiguration, kind iostest.DsymKind) iostest.CompileAndLinkResult {
	return iostest.CompileAndLinkResult{}
}

func (PlanResolver) RegisterReleaseBundling(attrs iostest.Attributes, info iostest.ObjcInfo, link iostest.LinkConfiguration, minOSVersion string) iostest.ReleaseBundlingResult {
	name := bundleName(attrs.Name)
	ipa := iostest.NewArtifact(outPrefix(attrs.Name) + ".ipa")
	bag := provider.NewBag()
	if err := provider.Set(bag, iostest.BundleInfoKey, iostest.BundleInfo{
		BundleDir: fmt.Sprintf(link.BundleDirFormat, name),
		IPA:       ipa,
	}); err != nil {
		panic(err)
	}
	return iostest.ReleaseBundlingResult{
		Files:     []iostest.Artifact{ipa},
		Providers: bag,
	}
}

func (PlanResolver) RegisterResourceValidation(attrs iostest.Attributes) iostest.ResourceValidationResult {
	return iostest.ResourceValidationResult{}
}

func (PlanResolver) RegisterIdeProjectExport(attrs iostest.Attributes, info iostest.XcodeInfo) iostest.IdeProjectResult {
	bag := provider.NewBag()
	if err := provider.Set(bag, iostest.XcodeInfoKey, info); err != nil {
		panic(err)
	}
	return iostest.IdeProjectResult{
		Files:     []iostest.Artifact{iostest.NewArtifact(outPrefix(attrs.Name) + ".xcodeproj.zip")},
		Providers: bag,
	}
}

func (PlanResolver) RegisterTestSupport(attrs iostest.Attributes) iostest.TestSupportResult {
	runner := iostest.NewArtifact(outPrefix(attrs.Name) + "_runner.sh")

	instrumented := nestedset.NewBuilder[iostest.Artifact]()
	for _, src := range attrs.Srcs {
		instrumented.Direct(iostest.NewArtifact(src))
	}
	for _, src := range attrs.NonArcSrcs {
		instrumented.Direct(iostest.NewArtifact(src))
	}

	return iostest.TestSupportResult{
		Executable: runner,
		Runfiles: iostest.RunfilesInfo{
			Files: nestedset.Of(runner),
		},
		InstrumentedFiles: iostest.InstrumentedFilesInfo{
			Files: instrumented.Build(),
		},
		Files: []iostest.Artifact{runner},
	}
}
