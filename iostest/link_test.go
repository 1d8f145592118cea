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
	"reflect"
	"testing"
)

func TestDeriveLinkConfigurationApplication(t *testing.T) {
	link := deriveLinkConfiguration(Application, nil)

	if len(link.ExtraArgs) != 0 {
		t.Errorf("want no extra link args, got %q", link.ExtraArgs)
	}
	if len(link.ExtraInputs) != 0 {
		t.Errorf("want no extra link inputs, got %v", link.ExtraInputs)
	}
	if link.BundleDirFormat != AppBundleDirFormat {
		t.Errorf("want bundle format %q, got %q", AppBundleDirFormat, link.BundleDirFormat)
	}
}

func TestDeriveLinkConfigurationHostedUnitTest(t *testing.T) {
	hostBinary := NewArtifact("host/HostApp_bin")
	link := deriveLinkConfiguration(HostedUnitTest, &HostAppResult{LinkedBinary: hostBinary})

	wantArgs := []string{"-bundle", "-bundle_loader", "host/HostApp_bin"}
	if !reflect.DeepEqual(wantArgs, link.ExtraArgs) {
		t.Errorf("want extra link args %q, got %q", wantArgs, link.ExtraArgs)
	}
	if want := []Artifact{hostBinary}; !reflect.DeepEqual(want, link.ExtraInputs) {
		t.Errorf("want extra link inputs %v, got %v", want, link.ExtraInputs)
	}
	if link.BundleDirFormat != XCTestBundleDirFormat {
		t.Errorf("want bundle format %q, got %q", XCTestBundleDirFormat, link.BundleDirFormat)
	}
}
