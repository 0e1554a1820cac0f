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
	"fmt"
	"io"
	"os"

	"github.com/envguard/go-envguard"
	"github.com/envguard/go-envguard/internal/config"
	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/scanner"
	"github.com/spf13/cobra"
)

type fixOptions struct {
	mode  string
	write bool
}

func newFixCmd(a *app) *cobra.Command {
	fo := fixOptions{}
	cmd := &cobra.Command{
		Use:   "fix FILE",
		Short: "Rewrite the lines of an env file that have findings",
		Long: "Scan FILE and rewrite every line with a finding. The suggested mode comments out critical " +
			"lines and replaces values with their suggested placeholder, mask replaces values with " +
			scanner.MaskedValue + " and remove drops the lines. The result is printed unless --write is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, a.cfg, fo, args[0])
		},
	}

	cmd.Flags().StringVar(&fo.mode, "mode", string(scanner.EditModeSuggested), "Edit mode: suggested, mask or remove")
	cmd.Flags().BoolVarP(&fo.write, "write", "w", false, "Write the result back to FILE")
	addCatalogFlags(cmd.Flags())
	return cmd
}

func runFix(cmd *cobra.Command, cfg *config.Config, fo fixOptions, path string) error {
	mode, err := scanner.ParseEditMode(fo.mode)
	if err != nil {
		return err
	}

	catalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := envguard.Scan(string(content),
		envguard.ScanWithFilePath(path),
		envguard.ScanWithCatalog(catalog),
		envguard.ScanWithAllowList(&cfg.AllowList),
	)
	if err != nil {
		return err
	}

	fixed, err := scanner.ApplyEdits(string(content), res.Findings, mode)
	if err != nil {
		return err
	}

	lines := map[int]struct{}{}
	for _, f := range res.Findings {
		lines[f.Line] = struct{}{}
	}

	if !fo.write {
		_, err := io.WriteString(cmd.OutOrStdout(), fixed)
		return err
	}

	if len(lines) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: nothing to fix\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	log.Debugf("(cmd) applied %s edits to %s", mode, path)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: fixed %d lines\n", path, len(lines))
	return nil
}
