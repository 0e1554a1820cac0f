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
	"regexp"

	"github.com/envguard/go-envguard/envfile"
	"github.com/envguard/go-envguard/rule"
)

// matcher is a rule with its patterns compiled.
type matcher struct {
	rule  rule.Rule
	line  *regexp.Regexp
	key   *regexp.Regexp
	value *regexp.Regexp
}

func compile(r rule.Rule) (*matcher, error) {
	m := &matcher{rule: r}
	var err error
	if m.line, err = compileOptional(r.Pattern); err != nil {
		return nil, fmt.Errorf("rule %s: invalid pattern: %w", r.ID, err)
	}

	if m.key, err = compileOptional(r.KeyPattern); err != nil {
		return nil, fmt.Errorf("rule %s: invalid key pattern: %w", r.ID, err)
	}

	if m.value, err = compileOptional(r.ValuePattern); err != nil {
		return nil, fmt.Errorf("rule %s: invalid value pattern: %w", r.ID, err)
	}

	return m, nil
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}

	return rule.Compile(pattern)
}

// match applies the line pattern as the only positive signal. The key and
// value patterns can only veto a line the pattern already matched.
func (m *matcher) match(l envfile.Line) bool {
	matched := m.line != nil && m.line.MatchString(l.Text)
	if !matched {
		return false
	}

	if m.key != nil && !m.key.MatchString(l.Key) {
		return false
	}

	if m.value != nil && !m.value.MatchString(l.Value) {
		return false
	}

	return true
}

// Match reports whether r matches l. An error is returned when one of the
// rule's patterns does not compile.
func Match(r rule.Rule, l envfile.Line) (bool, error) {
	m, err := compile(r)
	if err != nil {
		return false, err
	}

	return m.match(l), nil
}
