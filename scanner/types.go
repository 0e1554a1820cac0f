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

// EditKind names how an offending line is rewritten.
type EditKind string

const (
	EditComment EditKind = "comment"
	EditMask    EditKind = "mask"
	EditRemove  EditKind = "remove"
)

// Edit is the replacement proposed for the line of a finding.
type Edit struct {
	Kind        EditKind `json:"kind"`
	Replacement string   `json:"replacement"`
}

// Finding is a single rule match on a single line.
type Finding struct {
	Line        int           `json:"line"`
	Column      int           `json:"column"`
	Key         string        `json:"key"`
	Value       string        `json:"value"`
	Severity    rule.Severity `json:"severity"`
	RuleID      string        `json:"ruleId"`
	Message     string        `json:"message"`
	Suggestion  string        `json:"suggestion"`
	Remediation *Edit         `json:"remediation,omitempty"`
	// Text is the trimmed source line the finding was raised on.
	Text string `json:"text,omitempty"`
}

// ScanResult holds the findings of one document. The per-severity counts always
// agree with Findings.
type ScanResult struct {
	FilePath      string    `json:"filePath"`
	Findings      []Finding `json:"findings"`
	TotalLines    int       `json:"totalLines"`
	CriticalCount int       `json:"criticalCount"`
	WarningCount  int       `json:"warningCount"`
	InfoCount     int       `json:"infoCount"`
	Timestamp     time.Time `json:"timestamp"`
}
