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

	"github.com/envguard/go-envguard/internal/config"
	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/rule"
	"github.com/spf13/pflag"
)

func addCatalogFlags(fs *pflag.FlagSet) {
	fs.StringSlice("rules", nil, "Rule set files (YAML or JSON) to add to the built-in rules")
	fs.String("gitleaks-config", "", "gitleaks TOML config whose rules are added as CRITICAL rules")
	fs.Bool("gitleaks-defaults", false, "Add the rules of the default gitleaks config as CRITICAL rules")
	fs.StringSlice("disable", nil, "Rule ids to disable")
}

// buildCatalog assembles the built-in rules, custom rule sets and imported
// gitleaks rules, then disables the configured ids.
func buildCatalog(cfg *config.Config) (*rule.Catalog, error) {
	catalog := rule.DefaultCatalog()
	for _, path := range cfg.Rules {
		rs, err := rule.LoadRuleSetFile(path)
		if err != nil {
			return nil, err
		}

		catalog.AddRuleSet(rs)
	}

	if cfg.GitleaksConfig != "" {
		rules, err := rule.ImportGitleaksConfig(cfg.GitleaksConfig, rule.SeverityCritical)
		if err != nil {
			return nil, err
		}

		catalog.Add(rules...)
	}

	if cfg.GitleaksDefaults {
		rules, err := rule.GitleaksDefaultRules(rule.SeverityCritical)
		if err != nil {
			return nil, err
		}

		catalog.Add(rules...)
	}

	for _, id := range cfg.Disable {
		if !catalog.SetEnabled(id, false) {
			log.Warnf("cannot disable unknown rule %q", id)
		}
	}

	log.Debugf("(cmd) catalog has %d rules, %d enabled", catalog.Len(), len(catalog.Enabled()))
	return catalog, nil
}

func parseFailOn(s string) (rule.Severity, bool, error) {
	if s == "" || s == "none" {
		return "", false, nil
	}

	sev, err := rule.ParseSeverity(s)
	if err != nil {
		return "", false, fmt.Errorf("invalid --fail-on value: %w", err)
	}

	return sev, true, nil
}
