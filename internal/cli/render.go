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
	"strings"

	"github.com/spf13/cobra"

	"github.com/redpanda-data/common-go/headerfmt/boilerplate"
	"github.com/redpanda-data/common-go/headerfmt/dialect"
	"github.com/redpanda-data/common-go/headerfmt/header"
)

func renderCmd(opts *options) *cobra.Command {
	var (
		dialectType string
		file        string
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Print the header rendered for a dialect or file.",
		Example: "render --type block\nrender --file scripts/run.sh",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			var d dialect.Dialect
			var ok bool
			if file != "" {
				if d, ok = cfg.Registry().Classify(file); !ok {
					return fmt.Errorf("no dialect matches %q", file)
				}
			} else if d, ok = dialect.Builtin(dialectType); !ok {
				return fmt.Errorf("invalid dialect type %q, must be one of %s", dialectType, strings.Join(dialect.BuiltinNames(), ", "))
			}

			text, _, err := boilerplate.Load(cfg.GetLicenseFile())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), header.Render(text, d, cfg.GetYear()))
			return err
		},
	}

	cmd.Flags().StringVar(&dialectType, "type", dialect.Hash.Name, "builtin dialect: "+strings.Join(dialect.BuiltinNames(), ", "))
	cmd.Flags().StringVar(&file, "file", "", "render for the dialect this file is classified as, overrides --type")

	return cmd
}
