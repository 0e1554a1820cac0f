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
	"fmt"
	"regexp"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	patternCacheTTL      = 10 * time.Minute
	patternCacheCapacity = 1024
)

var patternCache = ttlcache.New[string, *regexp.Regexp](
	ttlcache.WithTTL[string, *regexp.Regexp](patternCacheTTL),
	ttlcache.WithCapacity[string, *regexp.Regexp](patternCacheCapacity),
	ttlcache.WithDisableTouchOnHit[string, *regexp.Regexp](),
)

// Compile returns the compiled form of pattern, reusing a cached compilation
// when one exists. Compilation errors are not cached.
func Compile(pattern string) (*regexp.Regexp, error) {
	var lerr error
	loader := ttlcache.LoaderFunc[string, *regexp.Regexp](
		func(c *ttlcache.Cache[string, *regexp.Regexp], key string) *ttlcache.Item[string, *regexp.Regexp] {
			re, err := regexp.Compile(key)
			if err != nil {
				lerr = err
				return nil
			}

			return c.Set(key, re, ttlcache.DefaultTTL)
		},
	)

	item := patternCache.Get(pattern, ttlcache.WithLoader[string, *regexp.Regexp](loader))
	if item == nil {
		if lerr == nil {
			lerr = fmt.Errorf("pattern %q could not be compiled", pattern)
		}

		return nil, lerr
	}

	return item.Value(), nil
}
