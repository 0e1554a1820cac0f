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

// Package report summarises scan results and renders them for people and tools.
package report

import (
	"io"
	"time"

	"github.com/envguard/go-envguard/environment"
	"github.com/envguard/go-envguard/scanner"
)

// Summary totals the counters of every result in a report.
type Summary struct {
	FilesScanned  int `json:"filesScanned"`
	TotalFindings int `json:"totalFindings"`
	Critical      int `json:"critical"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
}

type Report struct {
	Timestamp time.Time            `json:"timestamp"`
	Summary   Summary              `json:"summary"`
	Results   []scanner.ScanResult `json:"results"`
}

// Formatter renders a report.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

type options struct {
	now      func() time.Time
	redactor *environment.Redactor
}

type Option func(*options)

// WithTimestamp fixes the report timestamp.
func WithTimestamp(t time.Time) Option {
	return func(o *options) {
		o.now = func() time.Time { return t }
	}
}

// WithRedaction hides the values of sensitive keys in every finding of the
// report. The input results are not modified.
func WithRedaction(r *environment.Redactor) Option {
	return func(o *options) {
		o.redactor = r
	}
}

// New builds a report over results. Without WithRedaction the results are
// kept as given.
func New(results []scanner.ScanResult, opts ...Option) Report {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	if results == nil {
		results = []scanner.ScanResult{}
	}

	if o.redactor != nil {
		results = redact(results, o.redactor)
	}

	r := Report{
		Timestamp: o.now(),
		Results:   results,
	}

	r.Summary.FilesScanned = len(results)
	for _, res := range results {
		r.Summary.Critical += res.CriticalCount
		r.Summary.Warnings += res.WarningCount
		r.Summary.Info += res.InfoCount
	}

	r.Summary.TotalFindings = r.Summary.Critical + r.Summary.Warnings + r.Summary.Info
	return r
}

func redact(results []scanner.ScanResult, redactor *environment.Redactor) []scanner.ScanResult {
	out := make([]scanner.ScanResult, len(results))
	for i, res := range results {
		findings := make([]scanner.Finding, len(res.Findings))
		for j, f := range res.Findings {
			value := f.Value
			f.Value = redactor.Redact(f.Key, value)
			f.Text = redactor.RedactIn(f.Text, f.Key, value)
			if f.Remediation != nil {
				edit := *f.Remediation
				edit.Replacement = redactor.RedactIn(edit.Replacement, f.Key, value)
				f.Remediation = &edit
			}

			findings[j] = f
		}

		res.Findings = findings
		out[i] = res
	}

	return out
}
