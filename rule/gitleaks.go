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

package rule

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/envguard/go-envguard/log"
	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"golang.org/x/exp/maps"
)

const gitleaksSuggestion = "Remove the secret from the file and rotate it"

// ImportGitleaksConfig converts the rules of a gitleaks TOML configuration into
// line-pattern rules with the given severity. Entropy thresholds, keywords and
// path filters of the gitleaks rules are dropped; only the regex is kept.
func ImportGitleaksConfig(path string, severity Severity) ([]Rule, error) {
	log.Debugf("(rule) loading gitleaks configuration from: %s", path)

	// A dedicated viper instance keeps the global one untouched.
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("gitleaks config file not found at %s: %w", path, err)
		}

		return nil, fmt.Errorf("error reading gitleaks config file %s: %w", path, err)
	}

	return translateGitleaks(v, severity, path)
}

// GitleaksDefaultRules converts the configuration gitleaks ships with.
func GitleaksDefaultRules(severity Severity) ([]Rule, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(config.DefaultConfig)); err != nil {
		return nil, fmt.Errorf("error reading default gitleaks config: %w", err)
	}

	return translateGitleaks(v, severity, "gitleaks default config")
}

func translateGitleaks(v *viper.Viper, severity Severity, source string) ([]Rule, error) {
	if !severity.Valid() {
		return nil, fmt.Errorf("unknown severity %q", severity)
	}

	var viperConfig config.ViperConfig
	if err := v.Unmarshal(&viperConfig); err != nil {
		return nil, fmt.Errorf("error unmarshaling gitleaks config from %s: %w", source, err)
	}

	cfg, err := viperConfig.Translate()
	if err != nil {
		return nil, fmt.Errorf("error translating gitleaks config from %s: %w", source, err)
	}

	if len(cfg.Rules) == 0 {
		log.Warnf("(rule) gitleaks config from %s contains no rules", source)
	}

	ids := maps.Keys(cfg.Rules)
	slices.Sort(ids)

	rules := make([]Rule, 0, len(cfg.Rules))
	for _, id := range ids {
		gr := cfg.Rules[id]
		if gr.Regex == nil {
			log.Debugf("(rule) skipping path-only gitleaks rule %s", id)
			continue
		}

		description := gr.Description
		if description == "" {
			description = "Secret matched gitleaks rule " + id
		}

		rules = append(rules, Rule{
			ID:          "gitleaks-" + id,
			Name:        id,
			Description: description,
			Severity:    severity,
			Pattern:     gr.Regex.String(),
			Suggestion:  gitleaksSuggestion,
			Enabled:     true,
		})
	}

	log.Debugf("(rule) imported %d gitleaks rules from %s", len(rules), source)
	return rules, nil
}
