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
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const defaultJSONIndent = 2

type JSONFormatter struct {
	indent int
}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{indent: defaultJSONIndent}
}

// Format writes the report as a single JSON document. An indent of zero
// produces compact output.
func (f *JSONFormatter) Format(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	if f.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", f.indent))
	}

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("could not encode json report: %w", err)
	}

	return nil
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r Report) error {
	return NewJSONFormatter().Format(w, r)
}
