// Copyright 2026 Redpanda Data, Inc.
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

package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/redpanda-data/common-go/headerfmt/internal/output"
	"github.com/redpanda-data/common-go/headerfmt/internal/runner"
)

func applyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "apply",
		Short:   "Write license headers to every matching file.",
		Example: "apply --root-dir . --license-file LICENSE [--year 2025]",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, opts, false)
		},
	}
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print the files whose headers would change and fail if there are any.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, opts, true)
		},
	}
}

func runApply(cmd *cobra.Command, opts *options, check bool) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := opts.getLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	writer := output.NewWriter()
	if check {
		writer = output.NewChecker()
	}

	summary, err := runner.Apply(cmd.Context(), runner.Options{
		Root:        cfg.GetPath(),
		LicenseFile: cfg.GetLicenseFile(),
		Year:        cfg.GetYear(),
		Concurrency: cfg.GetConcurrency(),
		Registry:    cfg.Registry(),
		Ignore:      cfg.IgnorePatterns(),
		Writer:      writer,
		Logger:      logger,
	})
	if check {
		return reportCheck(cmd.OutOrStdout(), writer, summary, err)
	}

	return err
}

// reportCheck prints the diffs collected by writer, including those of a run
// where some files failed, and returns runErr or, failing that, an error
// when any file needs a header update.
func reportCheck(out io.Writer, writer *output.Writer, summary runner.Summary, runErr error) error {
	diffErr := writer.Error()
	if diffErr != nil {
		fmt.Fprintln(out, diffErr.Error())
	}

	if runErr != nil {
		return runErr
	}
	if diffErr != nil {
		return errors.Newf("%d file(s) need header updates", summary.Changed())
	}

	return nil
}
