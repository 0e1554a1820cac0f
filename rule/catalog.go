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
	"sync"
)

// Catalog is an ordered collection of rules. Duplicate ids are allowed; Lookup
// returns the first one inserted and SetEnabled toggles all of them.
type Catalog struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewCatalog returns a catalog holding a copy of rules in the given order.
func NewCatalog(rules ...Rule) *Catalog {
	return &Catalog{rules: append([]Rule{}, rules...)}
}

// DefaultCatalog returns a new catalog with the built-in rules. Each call
// returns an independent catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(BuiltinRules()...)
}

// Add appends rules to the end of the catalog without checking ids.
func (c *Catalog) Add(rules ...Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = append(c.rules, rules...)
}

// AddRuleSet appends every rule of rs.
func (c *Catalog) AddRuleSet(rs RuleSet) {
	c.Add(rs.Rules...)
}

// Lookup finds the first rule with exactly the given id.
func (c *Catalog) Lookup(id string) (Rule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.rules {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}

// Enabled returns a snapshot of the enabled rules in catalog order.
func (c *Catalog) Enabled() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if r.Enabled {
			out = append(out, r)
		}
	}

	return out
}

// All returns a snapshot of every rule in catalog order.
func (c *Catalog) All() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Rule{}, c.rules...)
}

// SetEnabled sets the enabled flag on every rule with the given id. An unknown
// id is not an error; the return value reports whether any rule was touched.
func (c *Catalog) SetEnabled(id string, enabled bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for i := range c.rules {
		if c.rules[i].ID == id {
			c.rules[i].Enabled = enabled
			found = true
		}
	}

	return found
}

// Len returns the number of rules, enabled or not.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rules)
}
