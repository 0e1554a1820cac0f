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

// Package envfile splits KEY=VALUE documents into candidate lines.
package envfile

import (
	"strings"
)

// Line is a physical line of a document that has the shape KEY=VALUE.
type Line struct {
	// Number is the 1-based physical line number.
	Number int
	// Text is the line with surrounding whitespace removed.
	Text  string
	Key   string
	Value string
}

// Document is the parsed form of an env file.
type Document struct {
	// TotalLines counts every physical line, including blank and comment lines.
	TotalLines int
	Lines      []Line
}

// Parse splits content on newlines and returns the lines that look like
// assignments. Blank lines, comments and lines without a key are skipped.
// Parse never fails; an empty document has one physical line.
func Parse(content string) Document {
	physical := strings.Split(content, "\n")
	doc := Document{TotalLines: len(physical)}
	for i, raw := range physical {
		text := strings.TrimSpace(raw)
		if text == "" || IsComment(text) {
			continue
		}

		key, val, ok := SplitVariable(text)
		if !ok {
			continue
		}

		doc.Lines = append(doc.Lines, Line{
			Number: i + 1,
			Text:   text,
			Key:    key,
			Value:  val,
		})
	}

	return doc
}

// IsComment reports whether a trimmed line is a comment.
func IsComment(text string) bool {
	return strings.HasPrefix(text, "#")
}

// SplitVariable splits a string in the format of "KEY=VAL" at the first equals
// sign and returns the trimmed key and value. ok is false when there is no
// equals sign or nothing precedes it.
func SplitVariable(v string) (key, val string, ok bool) {
	key, val, found := strings.Cut(v, "=")
	if !found || key == "" {
		return "", "", false
	}

	return strings.TrimSpace(key), strings.TrimSpace(val), true
}
