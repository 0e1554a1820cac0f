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

// Package cmd implements the envguard command line interface.
package cmd

import (
	"fmt"

	"github.com/envguard/go-envguard/internal/config"
	"github.com/envguard/go-envguard/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExitError carries a non-zero exit code that is not caused by a failure,
// such as findings at or above the fail-on severity.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type app struct {
	configPath string
	cfg        *config.Config
}

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "envguard",
		Short:         "Scan environment files for hardcoded secrets and risky settings",
		Long:          "envguard checks KEY=VALUE environment files against security rules and suggests how to fix each finding.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the config file (default is .envguard.yaml in the working or home directory)")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newScanCmd(a),
		newFixCmd(a),
		newRulesCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(viper.New(), a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	log.SetLogger(logger)
	a.cfg = cfg
	return nil
}
