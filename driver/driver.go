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

// Package driver assembles many independent test targets concurrently.
// Assembly holds no shared mutable state, so targets only meet at the
// diagnostics recorder, which is concurrency-safe.
package driver

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/redwrasse/bazel/diag"
	"github.com/redwrasse/bazel/iostest"
)

// A Result is the outcome of assembling one target.
type Result struct {
	Target      string
	Description *iostest.TargetDescription
	Diagnostics []diag.Diagnostic
}

// Failed reports whether the target cannot build: either assembly
// produced no description or it reported at least one error.
func (r Result) Failed() bool {
	if r.Description == nil {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.Severity == diag.Error {
			return true
		}
	}
	return false
}

// A Driver assembles targets against one resolver and configuration.
type Driver struct {
	Resolver iostest.DependencyResolver
	Config   iostest.Config

	// Logger receives per-target progress and diagnostics.  Nil means
	// no logging.
	Logger *zap.Logger

	// Parallelism limits concurrently assembled targets.  Zero or
	// negative means one per CPU.
	Parallelism int
}

// AssembleAll assembles every target and returns one Result per target,
// in input order.  User-facing problems land in the Results; a non-nil
// error means an internal consistency bug or a cancelled context, and no
// results are returned.
func (d *Driver) AssembleAll(ctx context.Context, targets []iostest.Attributes) ([]Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := d.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	rec := diag.NewRecorder()
	sink := diag.NewLogged(rec, logger)

	results := make([]Result, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, attrs := range targets {
		i, attrs := i, attrs
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("assembling target", zap.String("target", attrs.Name))
			desc, err := iostest.Assemble(attrs, d.Config, d.Resolver, sink)
			if err != nil {
				return err
			}
			results[i] = Result{Target: attrs.Name, Description: desc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Diagnostics = rec.Diagnostics(results[i].Target)
	}
	return results, nil
}
