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

// Package scanner matches env-file lines against detection rules and turns the
// matches into findings with a proposed remediation.
package scanner

import (
	"fmt"
	"time"

	"github.com/envguard/go-envguard/envfile"
	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/rule"
)

// Scanner scans documents against the enabled rules of its catalog. A Scanner
// is safe for concurrent use as long as the catalog is only changed through its
// methods.
type Scanner struct {
	catalog   *rule.Catalog
	allowList *AllowList
	now       func() time.Time
}

type Option func(*Scanner)

// WithCatalog replaces the built-in catalog.
func WithCatalog(c *rule.Catalog) Option {
	return func(s *Scanner) {
		if c != nil {
			s.catalog = c
		}
	}
}

func WithAllowList(a *AllowList) Option {
	return func(s *Scanner) {
		s.allowList = a
	}
}

// WithClock sets the source of result timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Scanner {
	s := &Scanner{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = rule.DefaultCatalog()
	}

	return s
}

// Catalog returns the catalog owned by this scanner. Changes made through it
// apply to subsequent scans.
func (s *Scanner) Catalog() *rule.Catalog {
	return s.catalog
}

// Scan checks every candidate line of content against every enabled rule, in
// line order and then catalog order. An empty filePath is reported as
// DefaultFilePath. A rule whose pattern does not compile fails the scan.
func (s *Scanner) Scan(content, filePath string) (ScanResult, error) {
	if filePath == "" {
		filePath = DefaultFilePath
	}

	matchers, err := s.matchers()
	if err != nil {
		return ScanResult{}, err
	}

	doc := envfile.Parse(content)
	if isPathAllowlisted(filePath, s.allowList) {
		log.Debugf("(scanner) skipping allowlisted file: %s", filePath)
		return Aggregate(filePath, nil, doc.TotalLines, s.now()), nil
	}

	var findings []Finding
	for _, line := range doc.Lines {
		for _, m := range matchers {
			if !m.match(line) {
				continue
			}

			if isLineAllowlisted(line.Text, s.allowList) {
				log.Debugf("(scanner) allowlisted %s match on %s:%d", m.rule.ID, filePath, line.Number)
				continue
			}

			findings = append(findings, newFinding(m.rule, line))
		}
	}

	log.Debugf("(scanner) %s: %d findings in %d lines using %d rules", filePath, len(findings), doc.TotalLines, len(matchers))
	return Aggregate(filePath, findings, doc.TotalLines, s.now()), nil
}

func (s *Scanner) matchers() ([]*matcher, error) {
	rules := s.catalog.Enabled()
	matchers := make([]*matcher, 0, len(rules))
	for _, r := range rules {
		m, err := compile(r)
		if err != nil {
			return nil, err
		}

		matchers = append(matchers, m)
	}

	return matchers, nil
}

func newFinding(r rule.Rule, l envfile.Line) Finding {
	edit := Remediate(r.Severity, r.Suggestion, l.Key, l.Text)
	return Finding{
		Line:        l.Number,
		Column:      findingColumn,
		Key:         l.Key,
		Value:       l.Value,
		Severity:    r.Severity,
		RuleID:      r.ID,
		Message:     fmt.Sprintf("%s: %s", r.Name, r.Description),
		Suggestion:  r.Suggestion,
		Remediation: &edit,
		Text:        l.Text,
	}
}
