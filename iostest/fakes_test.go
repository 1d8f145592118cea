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

type commonLibraryCall struct {
	extraSDKFrameworks []string
	extraDeps          []ObjcInfo
}

type compileAndLinkCall struct {
	link LinkConfiguration
	kind DsymKind
}

type releaseBundlingCall struct {
	link         LinkConfiguration
	minOSVersion string
}

// fakeResolver scripts the collaborating subsystems and records every
// call assembly makes.
type fakeResolver struct {
	common            CommonLibraryResult
	hostApp           *HostAppResult
	memleaks          *ObjcInfo
	bundling          ReleaseBundlingResult
	ide               IdeProjectResult
	testSupport       TestSupportResult
	compileProviders  *provider.Bag
	resourceProviders *provider.Bag

	commonCalls      []commonLibraryCall
	compileCalls     []compileAndLinkCall
	bundlingCalls    []releaseBundlingCall
	resourceCalls    int
	ideCalls         []XcodeInfo
	testSupportCalls int
}

// newFakeResolver returns a resolver scripted for a healthy target with a
// resolvable host application.
func newFakeResolver() *fakeResolver {
	hostBinary := NewArtifact("host/HostApp_bin")
	return &fakeResolver{
		common: CommonLibraryResult{
			HasCompiledArchive: true,
			ObjcInfo: ObjcInfo{
				SDKFrameworks:  []string{"Foundation"},
				TransitiveDeps: nestedset.Of(NewArtifact("lib/libcommon.a")),
			},
			ResourceOutputs: []Artifact{NewArtifact("res/Main.storyboard.zip")},
		},
		hostApp: &HostAppResult{
			LinkedBinary: hostBinary,
			IPA:          NewArtifact("host/HostApp.ipa"),
			ObjcInfo: ObjcInfo{
				TransitiveDeps: nestedset.Of(hostBinary),
			},
		},
		bundling: ReleaseBundlingResult{
			Files: []Artifact{NewArtifact("out/Test.ipa")},
		},
		ide: IdeProjectResult{
			Files: []Artifact{NewArtifact("out/Test.xcodeproj.zip")},
		},
		testSupport: TestSupportResult{
			Executable: NewArtifact("out/test_runner.sh"),
			Runfiles: RunfilesInfo{
				Files: nestedset.Of(NewArtifact("out/test_runner.sh"), NewArtifact("out/Test.ipa")),
			},
			InstrumentedFiles: InstrumentedFilesInfo{
				Files: nestedset.Of(NewArtifact("src/test.m")),
			},
			Files: []Artifact{NewArtifact("out/test_runner.sh")},
		},
	}
}

func (f *fakeResolver) ResolveCommonLibrary(attrs Attributes, extraSDKFrameworks []string, extraDeps []ObjcInfo) CommonLibraryResult {
	f.commonCalls = append(f.commonCalls, commonLibraryCall{
		extraSDKFrameworks: extraSDKFrameworks,
		extraDeps:          extraDeps,
	})
	return f.common
}

func (f *fakeResolver) HostApp(attrs Attributes) (HostAppResult, bool) {
	if f.hostApp == nil {
		return HostAppResult{}, false
	}
	return *f.hostApp, true
}

func (f *fakeResolver) MemleaksLibrary() (ObjcInfo, bool) {
	if f.memleaks == nil {
		return ObjcInfo{}, false
	}
	return *f.memleaks, true
}

func (f *fakeResolver) RegisterCompileAndLink(info ObjcInfo, link LinkConfiguration, kind DsymKind) CompileAndLinkResult {
	f.compileCalls = append(f.compileCalls, compileAndLinkCall{link: link, kind: kind})
	return CompileAndLinkResult{Providers: f.compileProviders}
}

func (f *fakeResolver) RegisterReleaseBundling(attrs Attributes, info ObjcInfo, link LinkConfiguration, minOSVersion string) ReleaseBundlingResult {
	f.bundlingCalls = append(f.bundlingCalls, releaseBundlingCall{link: link, minOSVersion: minOSVersion})
	return f.bundling
}

func (f *fakeResolver) RegisterResourceValidation(attrs Attributes) ResourceValidationResult {
	f.resourceCalls++
	return ResourceValidationResult{Providers: f.resourceProviders}
}

func (f *fakeResolver) RegisterIdeProjectExport(attrs Attributes, info XcodeInfo) IdeProjectResult {
	f.ideCalls = append(f.ideCalls, info)
	res := f.ide
	if res.Providers == nil {
		res.Providers = singletonBag(XcodeInfoKey, info)
	}
	return res
}

func (f *fakeResolver) RegisterTestSupport(attrs Attributes) TestSupportResult {
	f.testSupportCalls++
	return f.testSupport
}

var _ DependencyResolver = (*fakeResolver)(nil)
