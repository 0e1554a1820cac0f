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
	"github.com/invopop/jsonschema"
)

// SchemaID identifies the rule-set document format.
const SchemaID = "https://envguard.dev/schemas/ruleset/v0.1"

// Schema returns the JSON schema of a rule-set document.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := reflector.Reflect(&RuleSet{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "envguard rule set"
	schema.Description = "Custom detection rules for environment files"
	return schema
}
