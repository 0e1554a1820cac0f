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

package report

import (
	"fmt"
	"io"

	"github.com/envguard/go-envguard/registry"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatHTML    = "html"
	FormatSARIF   = "sarif"
)

var formatterRegistry = registry.New[Formatter]()

func init() {
	Register(FormatJSON, func() Formatter { return NewJSONFormatter() },
		registry.IntConfigOption(
			"indent",
			"Number of spaces used to indent the JSON document, 0 for compact output",
			defaultJSONIndent,
			func(f Formatter, indent int) (Formatter, error) {
				jf, ok := f.(*JSONFormatter)
				if !ok {
					return f, fmt.Errorf("unexpected formatter type: %T is not a json formatter", f)
				}

				if indent < 0 {
					return f, fmt.Errorf("indent must not be negative, got %d", indent)
				}

				jf.indent = indent
				return jf, nil
			},
		),
	)

	Register(FormatConsole, func() Formatter { return NewConsoleFormatter() },
		registry.BoolConfigOption(
			"color",
			"Colour the output with ANSI escape codes",
			false,
			func(f Formatter, enabled bool) (Formatter, error) {
				cf, ok := f.(*ConsoleFormatter)
				if !ok {
					return f, fmt.Errorf("unexpected formatter type: %T is not a console formatter", f)
				}

				cf.color = enabled
				return cf, nil
			},
		),
	)

	Register(FormatHTML, func() Formatter { return NewHTMLFormatter() },
		registry.StringConfigOption(
			"title",
			"Title of the generated page",
			defaultHTMLTitle,
			func(f Formatter, title string) (Formatter, error) {
				hf, ok := f.(*HTMLFormatter)
				if !ok {
					return f, fmt.Errorf("unexpected formatter type: %T is not an html formatter", f)
				}

				hf.title = title
				return hf, nil
			},
		),
	)

	Register(FormatSARIF, func() Formatter { return NewSARIFFormatter() },
		registry.BoolConfigOption(
			"pretty",
			"Indent the SARIF document",
			true,
			func(f Formatter, pretty bool) (Formatter, error) {
				sf, ok := f.(*SARIFFormatter)
				if !ok {
					return f, fmt.Errorf("unexpected formatter type: %T is not a sarif formatter", f)
				}

				sf.pretty = pretty
				return sf, nil
			},
		),
		registry.StringConfigOption(
			"tool-version",
			"Version reported for the envguard driver",
			"",
			func(f Formatter, version string) (Formatter, error) {
				sf, ok := f.(*SARIFFormatter)
				if !ok {
					return f, fmt.Errorf("unexpected formatter type: %T is not a sarif formatter", f)
				}

				sf.toolVersion = version
				return sf, nil
			},
		),
	)
}

// Register makes a formatter available by name.
func Register(name string, factory registry.FactoryFunc[Formatter], opts ...registry.Configurer) {
	formatterRegistry.Register(name, factory, opts...)
}

// NewFormatter creates the named formatter with its defaults, then applies
// the options in config.
func NewFormatter(name string, config map[string]any) (Formatter, error) {
	f, err := formatterRegistry.NewEntityFromConfigMap(name, config)
	if err != nil {
		return nil, fmt.Errorf("could not create %q formatter: %w", name, err)
	}

	return f, nil
}

// FormatterNames lists the registered formatters in name order.
func FormatterNames() []string {
	return formatterRegistry.Names()
}

// FormatterOptions returns the options accepted by the named formatter.
func FormatterOptions(name string) ([]registry.Configurer, bool) {
	return formatterRegistry.Options(name)
}

// Write renders r with the named formatter.
func Write(w io.Writer, name string, config map[string]any, r Report) error {
	f, err := NewFormatter(name, config)
	if err != nil {
		return err
	}

	return f.Format(w, r)
}
