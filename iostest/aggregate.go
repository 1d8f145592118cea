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

// A Contribution is the output of one subsystem destined for the final
// target description.
type Contribution struct {
	// Subsystem names the contributor in internal-consistency errors.
	Subsystem string

	// Files are artifacts added directly to files-to-build.
	Files []Artifact

	// TransitiveFiles are already-built artifact sets unioned into
	// files-to-build without flattening.
	TransitiveFiles []nestedset.Set[Artifact]

	// Providers carries the subsystem's capability descriptors.  May be
	// nil.
	Providers *provider.Bag
}

// A TargetDescription is the complete, immutable description of one
// assembled test target.  It is created exactly once, at the end of
// assembly, and handed to the build framework.
type TargetDescription struct {
	// FilesToBuild is the deduplicated, stably ordered set of artifacts
	// the target must produce.  Signing and archiving depend on the
	// order being deterministic.
	FilesToBuild nestedset.Set[Artifact]

	// Providers are the capability descriptors the target exposes.
	Providers *provider.Bag

	// Executable is the runnable test entry point.
	Executable Artifact
}

// aggregate merges contributions, in order, into one target description.
// Files-to-build keeps the first copy of each artifact in contribution
// order.  A single-valued descriptor kind supplied by two contributors
// means two subsystems disagree about who owns the kind; that is a bug in
// assembly, so aggregation fails as a whole and returns no description.
func aggregate(target string, contributions []Contribution, executable Artifact) (*TargetDescription, error) {
	files := nestedset.NewBuilder[Artifact]()
	providers := provider.NewBag()

	for _, c := range contributions {
		files.Direct(c.Files...)
		files.Transitive(c.TransitiveFiles...)
		if err := providers.Merge(c.Providers); err != nil {
			return nil, &InternalConsistencyError{Target: target, Subsystem: c.Subsystem, Err: err}
		}
	}

	return &TargetDescription{
		FilesToBuild: files.Build(),
		Providers:    providers,
		Executable:   executable,
	}, nil
}
