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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRule(id string, enabled bool) Rule {
	return Rule{
		ID:       id,
		Name:     id,
		Severity: SeverityInfo,
		Pattern:  "x",
		Enabled:  enabled,
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(testRule("a", true), testRule("b", false))

	r, ok := c.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "b", r.ID)

	_, ok = c.Lookup("B")
	assert.False(t, ok, "lookup is an exact match")

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestCatalogLookupDuplicateFirstWins(t *testing.T) {
	first := testRule("dup", true)
	first.Name = "first"
	second := testRule("dup", true)
	second.Name = "second"

	c := NewCatalog(first)
	c.Add(second)

	r, ok := c.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "first", r.Name)
	assert.Equal(t, 2, c.Len())
}

func TestCatalogEnabledKeepsOrder(t *testing.T) {
	c := NewCatalog(testRule("a", true), testRule("b", false), testRule("c", true))

	var ids []string
	for _, r := range c.Enabled() {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"a", "c"}, ids)
	assert.Len(t, c.All(), 3)
}

func TestCatalogSetEnabled(t *testing.T) {
	c := NewCatalog(testRule("a", true), testRule("dup", true), testRule("dup", true))

	assert.True(t, c.SetEnabled("dup", false))
	assert.Len(t, c.Enabled(), 1, "every rule carrying the id is toggled")

	assert.False(t, c.SetEnabled("missing", false), "unknown id is a no-op")
	assert.Len(t, c.Enabled(), 1)

	assert.True(t, c.SetEnabled("dup", true))
	assert.Len(t, c.Enabled(), 3)
}

func TestCatalogSnapshotsAreIndependent(t *testing.T) {
	c := NewCatalog(testRule("a", true))
	snapshot := c.All()
	snapshot[0].Enabled = false

	r, _ := c.Lookup("a")
	assert.True(t, r.Enabled, "mutating a snapshot must not touch the catalog")

	input := []Rule{testRule("b", true)}
	c2 := NewCatalog(input...)
	input[0].ID = "changed"
	_, ok := c2.Lookup("b")
	assert.True(t, ok)
}

func TestDefaultCatalogIsFreshPerCall(t *testing.T) {
	a := DefaultCatalog()
	b := DefaultCatalog()
	a.SetEnabled(IDDebugEnabled, false)

	r, ok := b.Lookup(IDDebugEnabled)
	require.True(t, ok)
	assert.True(t, r.Enabled)
}

func TestAddRuleSet(t *testing.T) {
	c := NewCatalog()
	c.AddRuleSet(RuleSet{Name: "custom", Rules: []Rule{testRule("x", true), testRule("y", true)}})
	assert.Equal(t, 2, c.Len())
}
