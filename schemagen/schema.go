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

// Command schemagen writes the JSON schemas of the rule-set and report
// documents into a directory.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/envguard/go-envguard/report"
	"github.com/envguard/go-envguard/rule"
	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	directory := pflag.String("dir", "schemagen", "Directory to store the generated schemas")
	pflag.Parse()

	if err := os.MkdirAll(*directory, 0o755); err != nil {
		logrus.Fatalf("could not create %s: %v", *directory, err)
	}

	schemas := map[string]*jsonschema.Schema{
		"ruleset": rule.Schema(),
		"report":  report.Schema(),
	}

	for name, schema := range schemas {
		if err := write(*directory, name, schema); err != nil {
			logrus.Fatal(err)
		}
	}
}

func write(dir, name string, schema *jsonschema.Schema) error {
	raw, err := schema.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal %s schema: %w", name, err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent %s schema: %w", name, err)
	}

	path := filepath.Join(dir, name+".json")
	logrus.Infof("writing %s schema to %s", name, path)
	return os.WriteFile(path, indented.Bytes(), 0o644)
}
