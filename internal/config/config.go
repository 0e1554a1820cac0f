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

// Package config loads CLI settings from flags, ENVGUARD_ environment
// variables and an optional .envguard.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/scanner"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the base name of the config file, without extension.
	FileName  = ".envguard"
	EnvPrefix = "ENVGUARD"
)

// Redaction configures which keys have their values hidden in reports.
type Redaction struct {
	AdditionalKeys  []string `mapstructure:"additional-keys"`
	ExcludeKeys     []string `mapstructure:"exclude-keys"`
	DisableDefaults bool     `mapstructure:"disable-defaults"`
}

type Config struct {
	Format           string                    `mapstructure:"format"`
	Output           string                    `mapstructure:"output"`
	Rules            []string                  `mapstructure:"rules"`
	GitleaksConfig   string                    `mapstructure:"gitleaks-config"`
	GitleaksDefaults bool                      `mapstructure:"gitleaks-defaults"`
	Disable          []string                  `mapstructure:"disable"`
	FailOn           string                    `mapstructure:"fail-on"`
	Redact           bool                      `mapstructure:"redact"`
	NoColor          bool                      `mapstructure:"no-color"`
	LogLevel         string                    `mapstructure:"log-level"`
	Include          []string                  `mapstructure:"include"`
	Concurrency      int                       `mapstructure:"concurrency"`
	AllowList        scanner.AllowList         `mapstructure:"allowlist"`
	Redaction        Redaction                 `mapstructure:"redaction"`
	Formatters       map[string]map[string]any `mapstructure:"formatters"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// SetDefaults registers the default value of every setting that has no flag.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "console")
	v.SetDefault("fail-on", "critical")
	v.SetDefault("log-level", "warn")
	v.SetDefault("include", []string{".env", ".env.*", "*.env"})
}

// Load reads configuration into a new Config. When path is empty the config
// file is searched for in the working directory and then the home directory;
// a missing file is not an error. Flags in flags override file and environment
// values only when they were set on the command line.
func Load(v *viper.Viper, path string, flags *pflag.FlagSet) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("could not expand config path %s: %w", path, err)
		}

		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		} else {
			log.Debugf("(config) could not determine home directory: %v", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}

		log.Debugf("(config) no %s config file found", FileName)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("could not bind flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	cfg.File = v.ConfigFileUsed()
	if cfg.File != "" {
		log.Debugf("(config) using config file %s", cfg.File)
	}

	return cfg, nil
}

// FormatterConfig returns the options configured for the named formatter.
func (c *Config) FormatterConfig(name string) map[string]any {
	if c.Formatters == nil {
		return nil
	}

	return c.Formatters[strings.ToLower(name)]
}
