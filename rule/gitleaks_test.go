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

package rule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitleaksTOML = `
title = "custom gitleaks config"

[[rules]]
id = "custom-token"
description = "Custom service token"
regex = '''ctk_[a-z0-9]{16}'''

[[rules]]
id = "another-token"
description = "Another token"
regex = '''atk-[A-Z]{8}'''
`

func TestImportGitleaksConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitleaks.toml")
	require.NoError(t, os.WriteFile(path, []byte(gitleaksTOML), 0o600))

	rules, err := ImportGitleaksConfig(path, SeverityWarning)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// sorted by gitleaks id
	assert.Equal(t, "gitleaks-another-token", rules[0].ID)
	assert.Equal(t, "gitleaks-custom-token", rules[1].ID)

	for _, r := range rules {
		assert.Equal(t, SeverityWarning, r.Severity)
		assert.True(t, r.Enabled)
		assert.Empty(t, r.KeyPattern)
		assert.Empty(t, r.ValuePattern)
		assert.NoError(t, r.Validate())
	}

	re, err := Compile(rules[1].Pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("SERVICE_TOKEN=ctk_0123456789abcdef"))
}

func TestImportGitleaksConfigErrors(t *testing.T) {
	_, err := ImportGitleaksConfig(filepath.Join(t.TempDir(), "nope.toml"), SeverityCritical)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "gitleaks.toml")
	require.NoError(t, os.WriteFile(path, []byte(gitleaksTOML), 0o600))
	_, err = ImportGitleaksConfig(path, "LOUD")
	assert.Error(t, err)
}

func TestGitleaksDefaultRules(t *testing.T) {
	rules, err := GitleaksDefaultRules(SeverityCritical)
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	for _, r := range rules {
		assert.True(t, strings.HasPrefix(r.ID, "gitleaks-"), r.ID)
		assert.NotEmpty(t, r.Pattern, r.ID)
	}
}
