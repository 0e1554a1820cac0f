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

package report

import (
	"fmt"
	"io"

	"github.com/envguard/go-envguard/rule"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	sarifToolName = "envguard"
	sarifToolURI  = "https://github.com/envguard/go-envguard"
)

type SARIFFormatter struct {
	pretty      bool
	toolVersion string
}

func NewSARIFFormatter() *SARIFFormatter {
	return &SARIFFormatter{pretty: true}
}

func sarifLevel(s rule.Severity) string {
	switch s {
	case rule.SeverityCritical:
		return "error"
	case rule.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// Format writes the report as a SARIF 2.1.0 log with one run. Every rule that
// produced a finding is listed in the run's driver.
func (f *SARIFFormatter) Format(w io.Writer, r Report) error {
	out, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("could not create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if f.toolVersion != "" {
		run.Tool.Driver.WithVersion(f.toolVersion)
	}

	for _, res := range r.Results {
		for _, finding := range res.Findings {
			run.AddRule(finding.RuleID).
				WithDescription(finding.Message).
				WithTextHelp(finding.Suggestion)

			region := sarif.NewSimpleRegion(finding.Line, finding.Line).WithStartColumn(finding.Column)
			location := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(res.FilePath)).
				WithRegion(region)

			result := run.CreateResultForRule(finding.RuleID).
				WithLevel(sarifLevel(finding.Severity)).
				WithMessage(sarif.NewTextMessage(fmt.Sprintf("%s (key %s)", finding.Message, finding.Key)))
			result.AddLocation(sarif.NewLocationWithPhysicalLocation(location))
		}
	}

	out.AddRun(run)
	if f.pretty {
		err = out.PrettyWrite(w)
	} else {
		err = out.Write(w)
	}

	if err != nil {
		return fmt.Errorf("could not write sarif report: %w", err)
	}

	return nil
}

// SARIF writes r as an indented SARIF log.
func SARIF(w io.Writer, r Report) error {
	return NewSARIFFormatter().Format(w, r)
}
