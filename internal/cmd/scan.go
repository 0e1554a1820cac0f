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
	"strings"

	"github.com/envguard/go-envguard"
	"github.com/envguard/go-envguard/environment"
	"github.com/envguard/go-envguard/internal/config"
	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan environment files and print a report",
		Long: "Scan the given files, and env files found below the given directories, " +
			"and print a report. Exits with status 1 when a finding is at or above --fail-on.",
		Example: "  envguard scan\n  envguard scan --format sarif --output envguard.sarif .\n  envguard scan --fail-on warning config/.env",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			return runScan(cmd, a.cfg, args)
		},
	}

	fs := cmd.Flags()
	fs.StringP("format", "f", "console", fmt.Sprintf("Report format, one of: %s", strings.Join(report.FormatterNames(), ", ")))
	fs.StringP("output", "o", "", "Write the report to a file instead of stdout")
	fs.String("fail-on", "critical", "Lowest severity that makes the command exit with status 1: critical, warning, info or none")
	fs.Bool("redact", false, "Hide the values of sensitive keys in the report")
	fs.Bool("no-color", false, "Disable coloured console output")
	fs.StringSlice("include", envguard.DefaultIncludeGlobs(), "Base name globs selecting files inside directories")
	fs.Int("concurrency", 0, "Number of files scanned in parallel (default GOMAXPROCS)")
	addCatalogFlags(fs)
	return cmd
}

func runScan(cmd *cobra.Command, cfg *config.Config, paths []string) error {
	threshold, failOn, err := parseFailOn(cfg.FailOn)
	if err != nil {
		return err
	}

	catalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	results, err := envguard.ScanPaths(cmd.Context(), paths,
		envguard.ScanWithCatalog(catalog),
		envguard.ScanWithAllowList(&cfg.AllowList),
		envguard.ScanWithIncludeGlobs(cfg.Include...),
		envguard.ScanWithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return err
	}

	var reportOpts []report.Option
	if cfg.Redact {
		reportOpts = append(reportOpts, report.WithRedaction(newRedactor(cfg.Redaction)))
	}

	rep := report.New(results, reportOpts...)

	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}

		defer f.Close()
		out = f
	}

	formatterConfig := map[string]any{}
	for k, v := range cfg.FormatterConfig(cfg.Format) {
		formatterConfig[k] = v
	}

	if cfg.Format == report.FormatConsole {
		if _, set := formatterConfig["color"]; !set {
			formatterConfig["color"] = !cfg.NoColor && isTerminal(out)
		}
	}

	if err := report.Write(out, cfg.Format, formatterConfig, rep); err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Infof("report written to %s", cfg.Output)
	}

	if !failOn {
		return nil
	}

	for _, res := range results {
		if res.HasFindingsAtOrAbove(threshold) {
			return &ExitError{
				Code:    1,
				Message: fmt.Sprintf("found %d findings, at least one at or above %s", rep.Summary.TotalFindings, threshold),
			}
		}
	}

	return nil
}

func newRedactor(cfg config.Redaction) *environment.Redactor {
	opts := []environment.Option{
		environment.WithAdditionalKeys(cfg.AdditionalKeys),
		environment.WithExcludeKeys(cfg.ExcludeKeys),
	}

	if cfg.DisableDefaults {
		opts = append(opts, environment.WithDisableDefaultSensitiveList())
	}

	return environment.NewRedactor(opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
