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
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/envguard/go-envguard/rule"
)

const defaultHTMLTitle = "envguard security report"

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"lower": func(s rule.Severity) string { return strings.ToLower(string(s)) },
	"icon":  severityIcon,
	"stamp": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2rem; }
th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #ddd; vertical-align: top; }
code { font-size: .9em; }
.summary span { margin-right: 1.5rem; }
.critical { border-left: 4px solid #c62828; }
.warning { border-left: 4px solid #f9a825; }
.info { border-left: 4px solid #1565c0; }
.clean { color: #2e7d32; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated {{stamp .Report.Timestamp}}</p>
<p class="summary">
<span>Files scanned: <strong>{{.Report.Summary.FilesScanned}}</strong></span>
<span>Findings: <strong>{{.Report.Summary.TotalFindings}}</strong></span>
<span>Critical: <strong>{{.Report.Summary.Critical}}</strong></span>
<span>Warnings: <strong>{{.Report.Summary.Warnings}}</strong></span>
<span>Info: <strong>{{.Report.Summary.Info}}</strong></span>
</p>
{{- if eq .Report.Summary.TotalFindings 0}}
<p class="clean">No issues found</p>
{{- end}}
{{- range .Report.Results}}{{if .Findings}}
<h2>{{.FilePath}}</h2>
<table>
<thead><tr><th>Severity</th><th>Line</th><th>Rule</th><th>Message</th><th>Key</th><th>Suggestion</th><th>Remediation</th></tr></thead>
<tbody>
{{- range .Findings}}
<tr class="{{lower .Severity}}">
<td>{{icon .Severity}} {{.Severity}}</td>
<td>{{.Line}}</td>
<td><code>{{.RuleID}}</code></td>
<td>{{.Message}}</td>
<td><code>{{.Key}}</code></td>
<td>{{.Suggestion}}</td>
<td>{{with .Remediation}}<code>{{.Replacement}}</code>{{end}}</td>
</tr>
{{- end}}
</tbody>
</table>
{{- end}}{{end}}
</body>
</html>
`))

type HTMLFormatter struct {
	title string
}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{title: defaultHTMLTitle}
}

func (f *HTMLFormatter) Format(w io.Writer, r Report) error {
	data := struct {
		Title  string
		Report Report
	}{
		Title:  f.title,
		Report: r,
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("could not render html report: %w", err)
	}

	return nil
}

// HTML writes r as a standalone HTML page.
func HTML(w io.Writer, r Report) error {
	return NewHTMLFormatter().Format(w, r)
}
