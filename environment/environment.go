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

// Package environment decides which variable names carry secrets and hides
// their values.
package environment

import (
	"strings"

	"github.com/envguard/go-envguard/envfile"
	"github.com/envguard/go-envguard/log"
	"github.com/gobwas/glob"
)

// Mask replaces the value of a sensitive variable.
const Mask = "******"

type Redactor struct {
	sensitiveVarsList           map[string]struct{}
	addSensitiveVarsList        map[string]struct{}
	excludeSensitiveVarsList    map[string]struct{}
	disableSensitiveVarsDefault bool

	exact map[string]struct{}
	globs []glob.Glob
}

type Option func(*Redactor)

// WithAdditionalKeys add additional keys to final list that is checked for sensitive variables.
func WithAdditionalKeys(additionalKeys []string) Option {
	return func(r *Redactor) {
		for _, value := range additionalKeys {
			r.addSensitiveVarsList[strings.ToUpper(value)] = struct{}{}
		}
	}
}

// WithExcludeKeys names variables that are never redacted, even when they match the sensitive list.
func WithExcludeKeys(excludeKeys []string) Option {
	return func(r *Redactor) {
		for _, value := range excludeKeys {
			r.excludeSensitiveVarsList[strings.ToUpper(value)] = struct{}{}
		}
	}
}

// WithDisableDefaultSensitiveList will disable the default list and only use the additional keys.
func WithDisableDefaultSensitiveList() Option {
	return func(r *Redactor) {
		r.disableSensitiveVarsDefault = true
	}
}

func NewRedactor(opts ...Option) *Redactor {
	r := &Redactor{
		sensitiveVarsList:        DefaultSensitiveEnvList(),
		addSensitiveVarsList:     map[string]struct{}{},
		excludeSensitiveVarsList: map[string]struct{}{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.disableSensitiveVarsDefault {
		r.sensitiveVarsList = map[string]struct{}{}
	}

	finalSensitiveKeysList := make(map[string]struct{}, len(r.sensitiveVarsList)+len(r.addSensitiveVarsList))
	for k, v := range r.sensitiveVarsList {
		finalSensitiveKeysList[k] = v
	}

	for k, v := range r.addSensitiveVarsList {
		finalSensitiveKeysList[k] = v
	}

	r.exact = map[string]struct{}{}
	for k := range finalSensitiveKeysList {
		if !strings.Contains(k, "*") {
			r.exact[k] = struct{}{}
			continue
		}

		g, err := glob.Compile(k)
		if err != nil {
			log.Errorf("(environment) sensitive glob pattern %q could not be interpreted: %w", k, err)
			continue
		}

		r.globs = append(r.globs, g)
	}

	return r
}

// IsSensitive reports whether values of key should be hidden. Keys are
// compared case-insensitively.
func (r *Redactor) IsSensitive(key string) bool {
	key = strings.ToUpper(strings.TrimSpace(key))
	if _, excluded := r.excludeSensitiveVarsList[key]; excluded {
		return false
	}

	if _, ok := r.exact[key]; ok {
		return true
	}

	for _, g := range r.globs {
		if g.Match(key) {
			return true
		}
	}

	return false
}

// Redact returns Mask when key is sensitive and value otherwise. Empty values
// are returned as is.
func (r *Redactor) Redact(key, value string) string {
	if value == "" || !r.IsSensitive(key) {
		return value
	}

	return Mask
}

// RedactLine hides the value of a KEY=VALUE line. Lines that are not
// assignments are returned unchanged.
func (r *Redactor) RedactLine(text string) string {
	key, val, ok := envfile.SplitVariable(text)
	if !ok || val == "" || !r.IsSensitive(key) {
		return text
	}

	return key + "=" + Mask
}

// RedactIn replaces every occurrence of the value of a sensitive key in s.
func (r *Redactor) RedactIn(s, key, value string) string {
	if value == "" || !r.IsSensitive(key) {
		return s
	}

	return strings.ReplaceAll(s, value, Mask)
}
