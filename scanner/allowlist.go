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
	"strings"

	"github.com/envguard/go-envguard/log"
	"github.com/envguard/go-envguard/rule"
)

// AllowList suppresses findings that are known to be safe.
type AllowList struct {
	// Description explains the purpose of this allowlist
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`

	// Paths are file path patterns to skip entirely (regex format)
	Paths []string `json:"paths,omitempty" yaml:"paths,omitempty" mapstructure:"paths"`

	// Regexes are line patterns to ignore (regex format)
	Regexes []string `json:"regexes,omitempty" yaml:"regexes,omitempty" mapstructure:"regexes"`

	// StopWords are specific strings to ignore (substring match)
	StopWords []string `json:"stopWords,omitempty" yaml:"stopWords,omitempty" mapstructure:"stopWords"`
}

type checkType string

const (
	checkLine checkType = "line"
	checkPath checkType = "path"
)

// isAllowlisted checks s against the allowlist. Path patterns only apply to
// path checks; stop words and regexes only apply to line checks.
func isAllowlisted(s string, allowList *AllowList, check checkType) bool {
	if allowList == nil {
		return false
	}

	if check == checkPath {
		return matchesAny(s, allowList.Paths, check)
	}

	for _, stopWord := range allowList.StopWords {
		if stopWord != "" && strings.Contains(s, stopWord) {
			log.Debugf("(scanner) %s matched stop word: %s", check, stopWord)
			return true
		}
	}

	return matchesAny(s, allowList.Regexes, check)
}

func matchesAny(s string, patterns []string, check checkType) bool {
	for _, pattern := range patterns {
		re, err := rule.Compile(pattern)
		if err != nil {
			log.Debugf("(scanner) error compiling allowlist %s pattern '%s': %v", check, pattern, err)
			continue
		}

		if re.MatchString(s) {
			log.Debugf("(scanner) %s matched allowlist pattern: %s", check, pattern)
			return true
		}
	}

	return false
}

func isLineAllowlisted(text string, allowList *AllowList) bool {
	return isAllowlisted(text, allowList, checkLine)
}

func isPathAllowlisted(path string, allowList *AllowList) bool {
	return isAllowlisted(path, allowList, checkPath)
}
