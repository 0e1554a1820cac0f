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
	"testing"

	"github.com/envguard/go-envguard/envfile"
	"github.com/envguard/go-envguard/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	base := rule.Rule{ID: "r", Name: "R", Severity: rule.SeverityWarning, Pattern: "(?i)token"}
	line := envfile.Line{Number: 1, Text: "AUTH_TOKEN=abc", Key: "AUTH_TOKEN", Value: "abc"}

	tests := []struct {
		name  string
		patch func(r *rule.Rule)
		want  bool
	}{
		{name: "line pattern only", patch: func(r *rule.Rule) {}, want: true},
		{name: "line pattern misses", patch: func(r *rule.Rule) { r.Pattern = "password" }, want: false},
		{name: "no line pattern never matches", patch: func(r *rule.Rule) {
			r.Pattern = ""
			r.KeyPattern = "TOKEN"
			r.ValuePattern = "abc"
		}, want: false},
		{name: "key veto", patch: func(r *rule.Rule) { r.KeyPattern = "^SECRET" }, want: false},
		{name: "key passes", patch: func(r *rule.Rule) { r.KeyPattern = "_TOKEN$" }, want: true},
		{name: "value veto", patch: func(r *rule.Rule) { r.ValuePattern = "^[0-9]+$" }, want: false},
		{name: "key and value pass", patch: func(r *rule.Rule) {
			r.KeyPattern = "AUTH"
			r.ValuePattern = "^abc$"
		}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.patch(&r)
			got, err := Match(r, line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchInvalidPattern(t *testing.T) {
	r := rule.Rule{ID: "broken", Pattern: "x", ValuePattern: "(("}
	_, err := Match(r, envfile.Line{Text: "x=1", Key: "x", Value: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
