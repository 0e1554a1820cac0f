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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/envguard/go-envguard/log"
	"go.yaml.in/yaml/v3"
)

// rawRule mirrors Rule but keeps Enabled optional so an omitted flag defaults to true.
type rawRule struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Severity     string `yaml:"severity"`
	Pattern      string `yaml:"pattern"`
	KeyPattern   string `yaml:"keyPattern"`
	ValuePattern string `yaml:"valuePattern"`
	Suggestion   string `yaml:"suggestion"`
	Enabled      *bool  `yaml:"enabled"`
}

type rawRuleSet struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Version     string    `yaml:"version"`
	Rules       []rawRule `yaml:"rules"`
}

// ParseRuleSet decodes a rule-set document. YAML and JSON are both accepted.
// Severity names are case-insensitive. The returned set is not validated.
func ParseRuleSet(data []byte) (RuleSet, error) {
	var raw rawRuleSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RuleSet{}, fmt.Errorf("could not decode rule set: %w", err)
	}

	rs := RuleSet{
		Name:        raw.Name,
		Description: raw.Description,
		Version:     raw.Version,
		Rules:       make([]Rule, 0, len(raw.Rules)),
	}

	for _, rr := range raw.Rules {
		enabled := true
		if rr.Enabled != nil {
			enabled = *rr.Enabled
		}

		rs.Rules = append(rs.Rules, Rule{
			ID:           strings.TrimSpace(rr.ID),
			Name:         rr.Name,
			Description:  rr.Description,
			Severity:     Severity(strings.ToUpper(strings.TrimSpace(rr.Severity))),
			Pattern:      rr.Pattern,
			KeyPattern:   rr.KeyPattern,
			ValuePattern: rr.ValuePattern,
			Suggestion:   rr.Suggestion,
			Enabled:      enabled,
		})
	}

	return rs, nil
}

// LoadRuleSetFile reads, parses and validates a rule-set file.
func LoadRuleSetFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("could not read rule set %s: %w", path, err)
	}

	rs, err := ParseRuleSet(data)
	if err != nil {
		return RuleSet{}, fmt.Errorf("%s: %w", path, err)
	}

	if err := rs.Validate(); err != nil {
		return RuleSet{}, fmt.Errorf("invalid rule set %s: %w", path, err)
	}

	if len(rs.Rules) == 0 {
		log.Warnf("(rule) rule set %s contains no rules", path)
	}

	log.Debugf("(rule) loaded %d rules from %s (%s %s)", len(rs.Rules), path, rs.Name, rs.Version)
	return rs, nil
}

// Validate checks every rule in the set and joins the errors.
func (rs RuleSet) Validate() error {
	var errs []error
	for i, r := range rs.Rules {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks required fields, the severity and that every pattern compiles.
func (r Rule) Validate() error {
	var errs []error
	if r.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}

	if r.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}

	if !r.Severity.Valid() {
		errs = append(errs, fmt.Errorf("unknown severity %q", r.Severity))
	}

	if r.Pattern == "" {
		errs = append(errs, errors.New("pattern is required"))
	}

	patterns := []struct{ field, pattern string }{
		{"pattern", r.Pattern},
		{"keyPattern", r.KeyPattern},
		{"valuePattern", r.ValuePattern},
	}
	for _, p := range patterns {
		if p.pattern == "" {
			continue
		}

		if _, err := Compile(p.pattern); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.field, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	if r.ID != "" {
		return fmt.Errorf("%s: %w", r.ID, errors.Join(errs...))
	}

	return errors.Join(errs...)
}
