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
	"fmt"
)

var (
	// ErrRequiresSource is reported when the target declared no usable
	// source files, so the common library produced no compiled archive.
	ErrRequiresSource = errors.New("test target requires at least one source file")

	// ErrNoMultiArch is reported when the active configuration requests
	// more than one architecture for the same build.
	ErrNoMultiArch = errors.New("test target cannot be built for multiple architectures at the same time")
)

// A MissingHostAppError is reported when a hosted unit test's host
// application dependency cannot be resolved.  Without the host binary no
// link configuration exists, so assembly stops before registering any
// actions.
type MissingHostAppError struct {
	Target  string
	HostApp string
}

func (e *MissingHostAppError) Error() string {
	return fmt.Sprintf("cannot resolve host application %q of test target %q", e.HostApp, e.Target)
}

// An InternalConsistencyError reports a contract violation between
// collaborating subsystems, such as two subsystems supplying the same
// single-valued capability descriptor.  It is a bug in assembly, never a
// user error, and aborts assembly of the target immediately.
type InternalConsistencyError struct {
	Target    string
	Subsystem string
	Err       error
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("internal consistency error assembling %q (subsystem %s): %s",
		e.Target, e.Subsystem, e.Err)
}

func (e *InternalConsistencyError) Unwrap() error {
	return e.Err
}
