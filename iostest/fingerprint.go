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

import "hash/fnv"

// byte written between hashed fields so that values moved between fields
// do not hash equal.  36 is arbitrary, the ascii record separator.
var recordSeparator = []byte{36}

// Fingerprint returns a stable hash of the description's observable
// shape: files-to-build in order, descriptor kinds in order, and the
// executable.  Two assemblies of the same target against identical
// collaborator responses must produce equal fingerprints; the driver and
// tests use this to check reproducibility.
func (d *TargetDescription) Fingerprint() uint64 {
	h := fnv.New64()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write(recordSeparator)
	}

	for _, a := range d.FilesToBuild.ToList() {
		write(a.ExecPath())
	}
	h.Write(recordSeparator)
	for _, kind := range d.Providers.Kinds() {
		write(kind)
	}
	h.Write(recordSeparator)
	write(d.Executable.ExecPath())

	return h.Sum64()
}
