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

// Package registry keeps named factories together with the typed options
// their entities accept, so callers such as the CLI can discover and set them
// at run time.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/envguard/go-envguard/log"
)

// Registry maps entity names to their factories and options.
type Registry[T any] struct {
	entriesByName map[string]Entry[T]
}

// FactoryFunc is a function that will create an instantiation of an Entity
type FactoryFunc[T any] func() T

// Entry contains the factory function, name and configurable options of an
// entity.
type Entry[T any] struct {
	Factory FactoryFunc[T]
	Name    string
	Options []Configurer
}

// New returns a new instance of a Registry
func New[T any]() Registry[T] {
	return Registry[T]{
		entriesByName: make(map[string]Entry[T]),
	}
}

// Register adds an Entry to the Registry for an Entity. Registering a name
// twice replaces the earlier entry.
func (r Registry[T]) Register(name string, factoryFunc FactoryFunc[T], opts ...Configurer) Entry[T] {
	entry := Entry[T]{
		Name:    name,
		Factory: factoryFunc,
		Options: opts,
	}

	r.entriesByName[name] = entry
	return entry
}

// Options returns the options of the entity with the provided name. The
// boolean is false when no such entity is registered.
func (r Registry[T]) Options(name string) ([]Configurer, bool) {
	entry, ok := r.entriesByName[name]
	return entry.Options, ok
}

func (r Registry[T]) Entry(name string) (Entry[T], bool) {
	entry, ok := r.entriesByName[name]
	return entry, ok
}

// AllEntries returns every Entry in the Registry sorted by name.
func (r Registry[T]) AllEntries() []Entry[T] {
	results := make([]Entry[T], 0, len(r.entriesByName))
	for _, registration := range r.entriesByName {
		results = append(results, registration)
	}

	slices.SortFunc(results, func(a, b Entry[T]) int {
		return strings.Compare(a.Name, b.Name)
	})

	return results
}

// Names returns the sorted names of all entries.
func (r Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entriesByName))
	for _, e := range r.AllEntries() {
		names = append(names, e.Name)
	}

	return names
}

// NewEntity creates a new entity with the default options set, then applies
// optSetters in order.
func (r Registry[T]) NewEntity(name string, optSetters ...func(T) (T, error)) (T, error) {
	var result T
	entry, ok := r.Entry(name)
	if !ok {
		return result, fmt.Errorf("could not find entry with name %v", name)
	}

	result, err := SetDefaultVals(entry.Factory(), entry.Options)
	if err != nil {
		return result, fmt.Errorf("could not set default values: %w", err)
	}

	return SetOptions(result, optSetters...)
}

// NewEntityFromConfigMap creates a new entity with options provided by a config map.
// Values in the config map will be used to set options on the entity by the key of the config map.
func (r Registry[T]) NewEntityFromConfigMap(name string, configMap map[string]any) (T, error) {
	var result T
	entry, ok := r.Entry(name)
	if !ok {
		return result, fmt.Errorf("could not find entry with name %v", name)
	}

	result, err := SetDefaultVals(entry.Factory(), entry.Options)
	if err != nil {
		return result, fmt.Errorf("could not set default values: %w", err)
	}

	return SetOptionsFromConfigMap(result, entry.Options, configMap)
}

func SetOptions[T any](entity T, optSetters ...func(T) (T, error)) (T, error) {
	var err error
	result := entity
	for _, setter := range optSetters {
		result, err = setter(result)
		if err != nil {
			return result, err
		}
	}

	return result, err
}

// SetDefaultVals will take an Entity and call Setter for every option with that option's defaultVal.
func SetDefaultVals[T any](entity T, opts []Configurer) (T, error) {
	var err error

	for _, opt := range opts {
		switch o := opt.(type) {
		case *ConfigOption[T, int]:
			entity, err = o.Setter()(entity, o.DefaultVal())
		case *ConfigOption[T, string]:
			entity, err = o.Setter()(entity, o.DefaultVal())
		case *ConfigOption[T, []string]:
			entity, err = o.Setter()(entity, o.DefaultVal())
		case *ConfigOption[T, bool]:
			entity, err = o.Setter()(entity, o.DefaultVal())
		case *ConfigOption[T, time.Duration]:
			entity, err = o.Setter()(entity, o.DefaultVal())
		}

		if err != nil {
			return entity, err
		}
	}

	return entity, nil
}

// SetOptionsFromConfigMap applies the values of configMap to the options with
// matching names. Unknown names are ignored. Values decoded from YAML or JSON
// are accepted where they convert losslessly.
func SetOptionsFromConfigMap[T any](entity T, configurers []Configurer, configMap map[string]any) (T, error) {
	optsByName := make(map[string]Configurer)
	for _, opt := range configurers {
		optsByName[opt.Name()] = opt
	}

	var err error
	for name, value := range configMap {
		opt, ok := optsByName[name]
		if !ok {
			log.Debugf("(registry) unknown option name in config map: %v", name)
			continue
		}

		switch o := opt.(type) {
		case *ConfigOption[T, int]:
			val, ok := toInt(value)
			if !ok {
				return entity, fmt.Errorf("expected value for option %v to be an int but got %T", name, value)
			}
			entity, err = o.Setter()(entity, val)
		case *ConfigOption[T, string]:
			val, ok := value.(string)
			if !ok {
				return entity, fmt.Errorf("expected value for option %v to be a string but got %T", name, value)
			}
			entity, err = o.Setter()(entity, val)
		case *ConfigOption[T, []string]:
			val, ok := toStringSlice(value)
			if !ok {
				return entity, fmt.Errorf("expected value for option %v to be a string slice but got %T", name, value)
			}
			entity, err = o.Setter()(entity, val)
		case *ConfigOption[T, bool]:
			val, ok := value.(bool)
			if !ok {
				return entity, fmt.Errorf("expected value for option %v to be a bool but got %T", name, value)
			}
			entity, err = o.Setter()(entity, val)
		case *ConfigOption[T, time.Duration]:
			val, ok := toDuration(value)
			if !ok {
				return entity, fmt.Errorf("expected value for option %v to be a duration but got %T", name, value)
			}
			entity, err = o.Setter()(entity, val)
		}

		if err != nil {
			return entity, fmt.Errorf("option %v: %w", name, err)
		}
	}

	return entity, nil
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	}

	return 0, false
}

func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}

	return nil, false
}

func toDuration(value any) (time.Duration, bool) {
	switch v := value.(type) {
	case time.Duration:
		return v, true
	case string:
		d, err := time.ParseDuration(v)
		return d, err == nil
	}

	return 0, false
}
