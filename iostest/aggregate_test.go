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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/redwrasse/bazel/nestedset"
	"github.com/redwrasse/bazel/provider"
)

var artifactCmp = cmp.AllowUnexported(Artifact{})

func TestAggregateFileOrder(t *testing.T) {
	a := NewArtifact("a")
	b := NewArtifact("b")
	c := NewArtifact("c")
	d := NewArtifact("d")

	desc, err := aggregate("//test:t", []Contribution{
		{Subsystem: "first", Files: []Artifact{b, a}},
		{Subsystem: "second", Files: []Artifact{a, c}, TransitiveFiles: []nestedset.Set[Artifact]{nestedset.Of(d, b)}},
	}, NewArtifact("runner"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []Artifact{b, a, c, d}
	if diff := cmp.Diff(want, desc.FilesToBuild.ToList(), artifactCmp); diff != "" {
		t.Errorf("files-to-build mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSharedTransitiveSets(t *testing.T) {
	shared := nestedset.Of(NewArtifact("shared1"), NewArtifact("shared2"))

	desc, err := aggregate("//test:t", []Contribution{
		{Subsystem: "first", TransitiveFiles: []nestedset.Set[Artifact]{shared}},
		{Subsystem: "second", TransitiveFiles: []nestedset.Set[Artifact]{shared}},
	}, Artifact{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []Artifact{NewArtifact("shared1"), NewArtifact("shared2")}
	if diff := cmp.Diff(want, desc.FilesToBuild.ToList(), artifactCmp); diff != "" {
		t.Errorf("files-to-build mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateProviders(t *testing.T) {
	execBag := singletonBag(ExecutionInfoKey, ExecutionInfo{
		Requirements: map[string]string{RequiresDarwin: ""},
	})
	xcodeBag := singletonBag(XcodeInfoKey, XcodeInfo{ProductType: Application.ProductType()})

	desc, err := aggregate("//test:t", []Contribution{
		{Subsystem: "execution", Providers: execBag},
		{Subsystem: "ide", Providers: xcodeBag},
		{Subsystem: "nothing"},
	}, Artifact{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, ok := provider.Get(desc.Providers, ExecutionInfoKey); !ok {
		t.Error("ExecutionInfo descriptor missing")
	}
	xcode, ok := provider.Get(desc.Providers, XcodeInfoKey)
	if !ok {
		t.Fatal("XcodeInfo descriptor missing")
	}
	if want := Application.ProductType(); xcode.ProductType != want {
		t.Errorf("want product type %q, got %q", want, xcode.ProductType)
	}
}

func TestAggregateDuplicateKind(t *testing.T) {
	first := singletonBag(ExecutionInfoKey, ExecutionInfo{})
	second := singletonBag(ExecutionInfoKey, ExecutionInfo{})

	desc, err := aggregate("//test:t", []Contribution{
		{Subsystem: "one", Providers: first},
		{Subsystem: "two", Providers: second},
	}, Artifact{})

	var ice *InternalConsistencyError
	if !errors.As(err, &ice) {
		t.Fatalf("want *InternalConsistencyError, got %v", err)
	}
	if ice.Subsystem != "two" {
		t.Errorf("want offending subsystem %q, got %q", "two", ice.Subsystem)
	}
	var dup *provider.DuplicateError
	if !errors.As(err, &dup) || dup.Kind != "ExecutionInfo" {
		t.Errorf("want wrapped duplicate of ExecutionInfo, got %v", err)
	}
	if desc != nil {
		t.Error("aggregation returned a description despite failing")
	}
}

func TestAggregateExtraDescriptorsConcatenate(t *testing.T) {
	type envVar struct{ Name, Value string }
	envKey := provider.NewListKey[envVar]("TestEnv")

	first := provider.NewBag()
	provider.Append(first, envKey, envVar{Name: "A", Value: "1"})
	second := provider.NewBag()
	provider.Append(second, envKey, envVar{Name: "B", Value: "2"}, envVar{Name: "A", Value: "3"})

	desc, err := aggregate("//test:t", []Contribution{
		{Subsystem: "one", Providers: first},
		{Subsystem: "two", Providers: second},
	}, Artifact{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []envVar{{"A", "1"}, {"B", "2"}, {"A", "3"}}
	if diff := cmp.Diff(want, provider.All(desc.Providers, envKey)); diff != "" {
		t.Errorf("extra descriptors mismatch (-want +got):\n%s", diff)
	}
}
