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
	"time"

	"github.com/envguard/go-envguard/rule"
)

// Aggregate builds the result of one document from its findings.
func Aggregate(filePath string, findings []Finding, totalLines int, at time.Time) ScanResult {
	result := ScanResult{
		FilePath:   filePath,
		Findings:   findings,
		TotalLines: totalLines,
		Timestamp:  at,
	}

	if result.Findings == nil {
		result.Findings = []Finding{}
	}

	for _, f := range findings {
		switch f.Severity {
		case rule.SeverityCritical:
			result.CriticalCount++
		case rule.SeverityWarning:
			result.WarningCount++
		case rule.SeverityInfo:
			result.InfoCount++
		}
	}

	return result
}

// HasFindingsAtOrAbove reports whether any finding is at least as severe as threshold.
func (r ScanResult) HasFindingsAtOrAbove(threshold rule.Severity) bool {
	for _, f := range r.Findings {
		if f.Severity.Rank() >= threshold.Rank() && f.Severity.Rank() > 0 {
			return true
		}
	}

	return false
}
