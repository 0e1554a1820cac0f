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
	"time"
)

// Configurer describes a single option of a registered entity.
type Configurer interface {
	Name() string
	Description() string
}

// Option lists the value types an option may carry.
type Option interface {
	int | string | []string | bool | time.Duration
}

// ConfigOption is a named, typed option with a default value and a setter that
// applies the value to an entity.
type ConfigOption[T any, TOption Option] struct {
	name        string
	description string
	defaultVal  TOption
	setter      func(T, TOption) (T, error)
}

func (co *ConfigOption[T, TOption]) Name() string {
	return co.name
}

func (co *ConfigOption[T, TOption]) DefaultVal() TOption {
	return co.defaultVal
}

func (co *ConfigOption[T, TOption]) Description() string {
	return co.description
}

func (co *ConfigOption[T, TOption]) Setter() func(T, TOption) (T, error) {
	return co.setter
}

func newConfigOption[T any, TOption Option](name, description string, defaultVal TOption, setter func(T, TOption) (T, error)) *ConfigOption[T, TOption] {
	return &ConfigOption[T, TOption]{
		name:        name,
		description: description,
		defaultVal:  defaultVal,
		setter:      setter,
	}
}

func IntConfigOption[T any](name, description string, defaultVal int, setter func(T, int) (T, error)) *ConfigOption[T, int] {
	return newConfigOption(name, description, defaultVal, setter)
}

func StringConfigOption[T any](name, description string, defaultVal string, setter func(T, string) (T, error)) *ConfigOption[T, string] {
	return newConfigOption(name, description, defaultVal, setter)
}

func StringSliceConfigOption[T any](name, description string, defaultVal []string, setter func(T, []string) (T, error)) *ConfigOption[T, []string] {
	return newConfigOption(name, description, defaultVal, setter)
}

func BoolConfigOption[T any](name, description string, defaultVal bool, setter func(T, bool) (T, error)) *ConfigOption[T, bool] {
	return newConfigOption(name, description, defaultVal, setter)
}

func DurationConfigOption[T any](name, description string, defaultVal time.Duration, setter func(T, time.Duration) (T, error)) *ConfigOption[T, time.Duration] {
	return newConfigOption(name, description, defaultVal, setter)
}
