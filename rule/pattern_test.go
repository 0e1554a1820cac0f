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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCaches(t *testing.T) {
	first, err := Compile(`(?i)^token$`)
	require.NoError(t, err)

	second, err := Compile(`(?i)^token$`)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.MatchString("TOKEN"))
}

func TestCompileInvalidPattern(t *testing.T) {
	re, err := Compile("([unclosed")
	assert.Error(t, err)
	assert.Nil(t, re)

	_, err = Compile("([unclosed")
	assert.Error(t, err, "failures are not cached as successes")
}
