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

package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	indent  int
	title   string
	tags    []string
	pretty  bool
	timeout time.Duration
}

func newTestRegistry() Registry[*widget] {
	r := New[*widget]()
	r.Register("widget", func() *widget { return &widget{} },
		IntConfigOption("indent", "indentation width", 2, func(w *widget, v int) (*widget, error) {
			if v < 0 {
				return w, errors.New("indent must not be negative")
			}
			w.indent = v
			return w, nil
		}),
		StringConfigOption("title", "page title", "Report", func(w *widget, v string) (*widget, error) {
			w.title = v
			return w, nil
		}),
		StringSliceConfigOption("tags", "tags", []string{"a"}, func(w *widget, v []string) (*widget, error) {
			w.tags = v
			return w, nil
		}),
		BoolConfigOption("pretty", "pretty output", true, func(w *widget, v bool) (*widget, error) {
			w.pretty = v
			return w, nil
		}),
		DurationConfigOption("timeout", "timeout", time.Second, func(w *widget, v time.Duration) (*widget, error) {
			w.timeout = v
			return w, nil
		}),
	)
	r.Register("another", func() *widget { return &widget{title: "other"} })
	return r
}

func TestNewEntityDefaults(t *testing.T) {
	r := newTestRegistry()

	w, err := r.NewEntity("widget")
	require.NoError(t, err)
	assert.Equal(t, &widget{indent: 2, title: "Report", tags: []string{"a"}, pretty: true, timeout: time.Second}, w)

	w, err = r.NewEntity("widget", func(w *widget) (*widget, error) {
		w.title = "custom"
		return w, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "custom", w.title)

	_, err = r.NewEntity("missing")
	assert.Error(t, err)
}

func TestNewEntityFromConfigMap(t *testing.T) {
	r := newTestRegistry()

	w, err := r.NewEntityFromConfigMap("widget", map[string]any{
		"indent":  float64(4),
		"title":   "Scan",
		"tags":    []any{"x", "y"},
		"pretty":  false,
		"timeout": "5s",
		"unknown": 1,
	})
	require.NoError(t, err)
	assert.Equal(t, &widget{indent: 4, title: "Scan", tags: []string{"x", "y"}, pretty: false, timeout: 5 * time.Second}, w)
}

func TestNewEntityFromConfigMapErrors(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		name   string
		config map[string]any
	}{
		{name: "wrong int type", config: map[string]any{"indent": "four"}},
		{name: "fractional int", config: map[string]any{"indent": 1.5}},
		{name: "wrong bool type", config: map[string]any{"pretty": "yes"}},
		{name: "wrong slice item", config: map[string]any{"tags": []any{1}}},
		{name: "bad duration", config: map[string]any{"timeout": "soon"}},
		{name: "setter error", config: map[string]any{"indent": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.NewEntityFromConfigMap("widget", tt.config)
			assert.Error(t, err)
		})
	}

	_, err := r.NewEntityFromConfigMap("missing", nil)
	assert.Error(t, err)
}

func TestEntries(t *testing.T) {
	r := newTestRegistry()

	assert.Equal(t, []string{"another", "widget"}, r.Names())

	opts, ok := r.Options("widget")
	require.True(t, ok)
	require.Len(t, opts, 5)
	assert.Equal(t, "indent", opts[0].Name())
	assert.Equal(t, "indentation width", opts[0].Description())

	_, ok = r.Entry("missing")
	assert.False(t, ok)
}
