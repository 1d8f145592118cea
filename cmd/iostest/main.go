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

// iostest checks target files: it assembles every declared test target
// against an execution-free resolver and prints the resulting build
// descriptions and diagnostics.  No build actions run.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redwrasse/bazel/driver"
	"github.com/redwrasse/bazel/iostest"
	"github.com/redwrasse/bazel/provider"
	"github.com/redwrasse/bazel/targetfile"
)

var (
	targetFilePath string
	parallelism    int
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:           "iostest",
	Short:         "Assemble and inspect mobile test target build descriptions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Assemble every target in a target file and report diagnostics",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&targetFilePath, "file", "f", "targets.yaml", "target file to load")
	checkCmd.Flags().IntVarP(&parallelism, "parallel", "p", 0, "max concurrently assembled targets (0 = one per CPU)")
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-target progress")
	rootCmd.AddCommand(checkCmd)
}

func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return cfg.Build()
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := targetfile.Load(targetFilePath)
	if err != nil {
		return err
	}

	d := &driver.Driver{
		Resolver:    driver.PlanResolver{},
		Config:      f.Config.BuildConfig(),
		Logger:      logger,
		Parallelism: parallelism,
	}
	results, err := d.AssembleAll(cmd.Context(), f.Attributes())
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		printResult(cmd.OutOrStdout(), r)
		if r.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}

func printResult(w io.Writer, r driver.Result) {
	if r.Description == nil {
		fmt.Fprintf(w, "%s: no description\n", r.Target)
	} else {
		fmt.Fprintf(w, "%s (fingerprint %016x)\n", r.Target, r.Description.Fingerprint())
		fmt.Fprintf(w, "  executable: %s\n", r.Description.Executable)
		if bundle, ok := provider.Get(r.Description.Providers, iostest.BundleInfoKey); ok {
			fmt.Fprintf(w, "  bundle: %s\n", bundle.BundleDir)
		}
		for _, a := range r.Description.FilesToBuild.ToList() {
			fmt.Fprintf(w, "  file: %s\n", a)
		}
		fmt.Fprintf(w, "  descriptors: %s\n", strings.Join(r.Description.Providers.Kinds(), ", "))
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "  %s: %s\n", d.Severity, d.Err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
