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

// An Artifact is an opaque handle to one file that a registered build
// action will produce.  Assembly never touches the file itself, only the
// handle.  Two Artifacts are equal iff they name the same output path,
// which is what deduplication in files-to-build keys on.
type Artifact struct {
	execPath string
}

// NewArtifact returns a handle for the output at execPath.
func NewArtifact(execPath string) Artifact {
	return Artifact{execPath: execPath}
}

// ExecPath returns the path the artifact will be produced at.
func (a Artifact) ExecPath() string {
	return a.execPath
}

// IsNil reports whether the handle is the zero Artifact.
func (a Artifact) IsNil() bool {
	return a.execPath == ""
}

func (a Artifact) String() string {
	return a.execPath
}
