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

package scanner

import (
	"fmt"
	"strings"

	"github.com/envguard/go-envguard/rule"
)

// Remediate returns the edit proposed for a line with the given severity.
// Critical lines are commented out with a security note, warnings have their
// value masked and everything else is commented out with an informational note.
func Remediate(severity rule.Severity, suggestion, key, text string) Edit {
	switch severity {
	case rule.SeverityCritical:
		return Edit{
			Kind:        EditComment,
			Replacement: fmt.Sprintf("# %s # SECURITY: %s", text, suggestion),
		}
	case rule.SeverityWarning:
		return Edit{
			Kind:        EditMask,
			Replacement: key + "=" + MaskedValue,
		}
	default:
		return Edit{
			Kind:        EditComment,
			Replacement: fmt.Sprintf("# %s # INFO: %s", text, suggestion),
		}
	}
}

// EditMode selects how ApplyEdits rewrites lines that have findings.
type EditMode string

const (
	// EditModeSuggested applies the remediation of the first finding on each line.
	EditModeSuggested EditMode = "suggested"
	// EditModeRemove deletes every line with a finding.
	EditModeRemove EditMode = "remove"
	// EditModeMask masks the value of every line with a finding.
	EditModeMask EditMode = "mask"
)

func ParseEditMode(s string) (EditMode, error) {
	switch m := EditMode(strings.ToLower(strings.TrimSpace(s))); m {
	case EditModeSuggested, EditModeRemove, EditModeMask:
		return m, nil
	}

	return "", fmt.Errorf("unknown edit mode %q: expected one of suggested, remove, mask", s)
}

// ApplyEdits rewrites content according to mode. Lines without findings are
// kept byte for byte, including a trailing carriage return on rewritten lines.
func ApplyEdits(content string, findings []Finding, mode EditMode) (string, error) {
	if _, err := ParseEditMode(string(mode)); err != nil {
		return "", err
	}

	first := make(map[int]Finding, len(findings))
	for _, f := range findings {
		if _, ok := first[f.Line]; !ok {
			first[f.Line] = f
		}
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		f, ok := first[i+1]
		if !ok {
			out = append(out, line)
			continue
		}

		cr := ""
		if strings.HasSuffix(line, "\r") {
			cr = "\r"
		}

		switch mode {
		case EditModeRemove:
			continue
		case EditModeMask:
			out = append(out, f.Key+"="+MaskedValue+cr)
		default:
			edit := f.Remediation
			if edit == nil {
				e := Remediate(f.Severity, f.Suggestion, f.Key, strings.TrimSpace(line))
				edit = &e
			}

			out = append(out, edit.Replacement+cr)
		}
	}

	return strings.Join(out, "\n"), nil
}
