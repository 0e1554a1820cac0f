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

package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := "# header comment\n\nDB_HOST=localhost\n  API_KEY = abc=def  \nnot an assignment\n=novalue\nEMPTY=\n\t# indented comment\r\nLAST=1"

	doc := Parse(content)
	assert.Equal(t, 9, doc.TotalLines)

	want := []Line{
		{Number: 3, Text: "DB_HOST=localhost", Key: "DB_HOST", Value: "localhost"},
		{Number: 4, Text: "API_KEY = abc=def", Key: "API_KEY", Value: "abc=def"},
		{Number: 7, Text: "EMPTY=", Key: "EMPTY", Value: ""},
		{Number: 9, Text: "LAST=1", Key: "LAST", Value: "1"},
	}
	assert.Equal(t, want, doc.Lines)
}

func TestParseTotalLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 1},
		{name: "single", content: "A=1", want: 1},
		{name: "trailing newline", content: "A=1\n", want: 2},
		{name: "only comments", content: "# a\n# b\n# c", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.content).TotalLines)
		})
	}
}

func TestParseSkipsEverythingButAssignments(t *testing.T) {
	doc := Parse("# PASSWORD=secret\n\n   \njust text")
	assert.Empty(t, doc.Lines)
	assert.Equal(t, 4, doc.TotalLines)
}

func TestSplitVariable(t *testing.T) {
	key, val, ok := SplitVariable("KEY=a=b")
	require.True(t, ok)
	assert.Equal(t, "KEY", key)
	assert.Equal(t, "a=b", val)

	_, _, ok = SplitVariable("=value")
	assert.False(t, ok)

	_, _, ok = SplitVariable("novalue")
	assert.False(t, ok)
}
