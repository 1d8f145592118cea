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

// validateTarget checks the target-level invariants.  The returned errors
// are reported to the diagnostics sink by the caller and do not stop
// assembly: the description is still produced so that one pass surfaces
// as many problems with the target as possible.
func validateTarget(common CommonLibraryResult, cfg Config) []error {
	var errs []error
	if !common.HasCompiledArchive {
		errs = append(errs, ErrRequiresSource)
	}
	if len(cfg.Architectures) > 1 {
		errs = append(errs, ErrNoMultiArch)
	}
	return errs
}
