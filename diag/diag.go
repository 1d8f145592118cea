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

// Package diag collects per-target diagnostics during assembly.
//
// Reporting never fails and never aborts the caller: assembly keeps going
// after a user-facing error so that one pass surfaces as many problems
// with a target as possible.  Whether a reported error fails the overall
// build is the caller's decision.
package diag

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/redwrasse/bazel/syncmap"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// A Diagnostic is one reported problem with a target.
type Diagnostic struct {
	Severity Severity
	Err      error
}

// Sink receives diagnostics keyed by target label.  Implementations must
// be safe for concurrent use by independently assembled targets.
type Sink interface {
	Report(target string, severity Severity, err error)
}

// A Recorder is a Sink that accumulates diagnostics per target.
type Recorder struct {
	targets syncmap.SyncMap[string, *targetDiags]
}

type targetDiags struct {
	mu      sync.Mutex
	entries []Diagnostic
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Report implements Sink.
func (r *Recorder) Report(target string, severity Severity, err error) {
	if err == nil {
		return
	}
	d, _ := r.targets.LoadOrStoreFunc(target, func() *targetDiags { return &targetDiags{} })
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, Diagnostic{Severity: severity, Err: err})
}

// Diagnostics returns a copy of everything reported for a target, in
// report order.
func (r *Recorder) Diagnostics(target string) []Diagnostic {
	d, ok := r.targets.Load(target)
	if !ok {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Diagnostic, len(d.entries))
	copy(out, d.entries)
	return out
}

// Errors returns the error-severity diagnostics reported for a target.
func (r *Recorder) Errors(target string) []error {
	var errs []error
	for _, d := range r.Diagnostics(target) {
		if d.Severity == Error {
			errs = append(errs, d.Err)
		}
	}
	return errs
}

// HasErrors reports whether any error-severity diagnostic was reported
// for the target.
func (r *Recorder) HasErrors(target string) bool {
	return len(r.Errors(target)) > 0
}

// Targets returns the labels of every target with at least one
// diagnostic, sorted.
func (r *Recorder) Targets() []string {
	var labels []string
	r.targets.Range(func(target string, _ *targetDiags) bool {
		labels = append(labels, target)
		return true
	})
	sort.Strings(labels)
	return labels
}

type logged struct {
	next   Sink
	logger *zap.Logger
}

// NewLogged returns a Sink that logs every report and forwards it to
// next unchanged.
func NewLogged(next Sink, logger *zap.Logger) Sink {
	return &logged{next: next, logger: logger}
}

func (l *logged) Report(target string, severity Severity, err error) {
	if err != nil {
		switch severity {
		case Error:
			l.logger.Error(err.Error(), zap.String("target", target))
		default:
			l.logger.Warn(err.Error(), zap.String("target", target))
		}
	}
	l.next.Report(target, severity, err)
}
