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

// Package rule defines detection rules for environment files, the catalog that
// holds them, and the loaders that turn rule-set documents into rules.
package rule

import (
	"fmt"
	"strings"
)

// Severity ranks a rule. Ordered by decreasing urgency: CRITICAL, WARNING, INFO.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}

	return false
}

// Rank returns 3 for CRITICAL, 2 for WARNING, 1 for INFO and 0 for anything else.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	}

	return 0
}

// ParseSeverity accepts any casing of a known severity name.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if !sev.Valid() {
		return "", fmt.Errorf("unknown severity %q: expected one of CRITICAL, WARNING, INFO", s)
	}

	return sev, nil
}

// Rule is a declarative detection definition. Pattern is tested against the
// whole trimmed line and is the only source of a positive match; KeyPattern and
// ValuePattern, when set, can only reject a line the Pattern accepted.
type Rule struct {
	ID           string   `json:"id" yaml:"id" jsonschema:"title=ID,description=Unique rule identifier"`
	Name         string   `json:"name" yaml:"name" jsonschema:"title=Name,description=Display name"`
	Description  string   `json:"description" yaml:"description" jsonschema:"title=Description"`
	Severity     Severity `json:"severity" yaml:"severity" jsonschema:"enum=CRITICAL,enum=WARNING,enum=INFO"`
	Pattern      string   `json:"pattern,omitempty" yaml:"pattern,omitempty" jsonschema:"title=Line pattern,description=Regular expression tested against the full line"`
	KeyPattern   string   `json:"keyPattern,omitempty" yaml:"keyPattern,omitempty" jsonschema:"title=Key pattern,description=Regular expression the extracted key must match"`
	ValuePattern string   `json:"valuePattern,omitempty" yaml:"valuePattern,omitempty" jsonschema:"title=Value pattern,description=Regular expression the extracted value must match"`
	Suggestion   string   `json:"suggestion" yaml:"suggestion" jsonschema:"title=Suggestion,description=Remediation advice shown to the user"`
	Enabled      bool     `json:"enabled" yaml:"enabled" jsonschema:"default=true"`
}

// RuleSet is the persisted form of a collection of rules.
type RuleSet struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Rules       []Rule `json:"rules" yaml:"rules"`
}
