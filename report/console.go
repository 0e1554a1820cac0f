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
	"strings"

	"github.com/envguard/go-envguard/rule"
	"github.com/fatih/color"
)

const consoleTitle = "envguard security report"

type ConsoleFormatter struct {
	color bool
}

func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

type palette struct {
	critical *color.Color
	warning  *color.Color
	info     *color.Color
	header   *color.Color
	faint    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		critical: color.New(color.FgRed, color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		info:     color.New(color.FgBlue),
		header:   color.New(color.Bold),
		faint:    color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.critical, p.warning, p.info, p.header, p.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) severity(s rule.Severity) *color.Color {
	switch s {
	case rule.SeverityCritical:
		return p.critical
	case rule.SeverityWarning:
		return p.warning
	default:
		return p.info
	}
}

func severityIcon(s rule.Severity) string {
	switch s {
	case rule.SeverityCritical:
		return "🔴"
	case rule.SeverityWarning:
		return "🟡"
	default:
		return "🔵"
	}
}

// Format writes a human readable report. Files without findings are left out
// of the per-file sections.
func (f *ConsoleFormatter) Format(w io.Writer, r Report) error {
	p := newPalette(f.color)
	b := &strings.Builder{}

	fmt.Fprintln(b, p.header.Sprint(consoleTitle))
	fmt.Fprintln(b, strings.Repeat("=", len(consoleTitle)))
	fmt.Fprintf(b, "Files scanned: %d\n", r.Summary.FilesScanned)
	fmt.Fprintf(b, "Findings: %d (%s, %s, %s)\n",
		r.Summary.TotalFindings,
		p.critical.Sprintf("%d critical", r.Summary.Critical),
		p.warning.Sprintf("%d warnings", r.Summary.Warnings),
		p.info.Sprintf("%d info", r.Summary.Info),
	)

	if r.Summary.TotalFindings == 0 {
		fmt.Fprintln(b, "\n✅ No issues found")
	}

	for _, res := range r.Results {
		if len(res.Findings) == 0 {
			continue
		}

		fmt.Fprintln(b)
		fmt.Fprint(b, p.header.Sprintf("📄 %s", res.FilePath))
		fmt.Fprintf(b, " (%d %s, %d lines)\n", len(res.Findings), plural(len(res.Findings), "finding", "findings"), res.TotalLines)
		for _, finding := range res.Findings {
			sev := p.severity(finding.Severity)
			fmt.Fprintf(b, "  %s %s line %d: %s\n", severityIcon(finding.Severity), sev.Sprint(finding.Severity), finding.Line, finding.Message)
			fmt.Fprintf(b, "     Key: %s  %s\n", finding.Key, p.faint.Sprintf("[%s]", finding.RuleID))
			if finding.Suggestion != "" {
				fmt.Fprintf(b, "     💡 %s\n", finding.Suggestion)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Console writes r as plain text without colour.
func Console(w io.Writer, r Report) error {
	return NewConsoleFormatter().Format(w, r)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
