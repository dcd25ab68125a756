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

// Package cli wires the headerfmt commands.
package cli

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redpanda-data/common-go/headerfmt/internal/config"
)

type options struct {
	configFile  string
	root        string
	licenseFile string
	year        int
	concurrency int
	verbose     bool

	// logger overrides the logger built from verbose.
	logger *zap.Logger
}

func (o *options) getLogger() (*zap.Logger, error) {
	if o.logger != nil {
		return o.logger, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if !o.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// loadConfig reads the config file and applies flag overrides. The default
// config file is optional, an explicitly passed one is not.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, err
		}
		cfg = &config.Config{}
	}

	flags := cmd.Flags()
	if flags.Changed("root-dir") {
		cfg.Path = o.root
	}
	if flags.Changed("license-file") {
		cfg.LicenseFile = o.licenseFile
	}
	if flags.Changed("year") {
		cfg.Year = o.year
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}

	if err := cfg.InitializeAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Command returns the headerfmt root command. Without a subcommand it behaves
// like apply.
func Command() *cobra.Command {
	return command(&options{})
}

func command(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "headerfmt",
		Short: "Add or update SPDX license headers across a source tree.",
		Long: "headerfmt adds a standardized SPDX copyright and license header to every recognized source file, " +
			"replaces outdated headers and leaves current ones untouched.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, opts, false)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", config.DefaultFile, "path to config file")
	flags.StringVar(&opts.root, "root-dir", ".", "root directory to search for files")
	flags.StringVar(&opts.licenseFile, "license-file", config.DefaultLicenseFile, "path to the Apache 2.0 license file")
	flags.IntVar(&opts.year, "year", 0, "copyright year, defaults to the current year")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "number of files processed in parallel, defaults to GOMAXPROCS")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		applyCmd(opts),
		checkCmd(opts),
		renderCmd(opts),
		configCmd(opts),
	)

	return root
}
