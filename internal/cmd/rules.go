// Copyright 2026 The Envguard Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/envguard/go-envguard/rule"
	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the rule catalog",
	}

	cmd.AddCommand(newRulesListCmd(a), newRulesSchemaCmd())
	return cmd
}

func newRulesListCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the rules a scan would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := buildCatalog(a.cfg)
			if err != nil {
				return err
			}

			rules := catalog.Enabled()
			if all {
				rules = catalog.All()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSEVERITY\tENABLED\tNAME")
			for _, r := range rules {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", r.ID, r.Severity, r.Enabled, r.Name)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include disabled rules")
	addCatalogFlags(cmd.Flags())
	return cmd
}

func newRulesSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of rule set files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rule.Schema())
		},
	}
}
