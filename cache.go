// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"slices"
	"time"

	"github.com/cybrota/parlance/dictionary"
	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired entries every 5 minutes
	suggestionCacheCleanup = 5 * time.Minute
)

// NewSuggestionCache creates a cache for "did you mean" results. A zero
// expiration keeps entries until they are flushed.
func NewSuggestionCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	return cache.New(expiration, suggestionCacheCleanup)
}

func CacheSuggestions(c *cache.Cache, word string, suggestions []string) {
	c.SetDefault(word, slices.Clone(suggestions))
}

// GetSuggestions returns the cached suggestions for word.
func GetSuggestions(c *cache.Cache, word string) ([]string, bool) {
	val, ok := c.Get(word)
	if !ok {
		return nil, false
	}
	return slices.Clone(val.([]string)), true
}

// GetOrFillSuggestions serves word from the cache, asking dict on a miss.
func GetOrFillSuggestions(c *cache.Cache, dict *dictionary.Dictionary, word string) []string {
	if suggestions, ok := GetSuggestions(c, word); ok {
		return suggestions
	}
	suggestions := dict.SuggestCorrections(word)
	CacheSuggestions(c, word, suggestions)
	return suggestions
}
