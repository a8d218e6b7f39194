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

package sources

import "strings"

// translationStops end a translation when no ':' marks its boundary.
const translationStops = "([,;"

// ParseLine extracts a pair from one line of a tab-separated word list.
//
// Example lines:
//
//	contemplate	contempler [formal]
//	abandon	abandonner (qqch), délaisser
//	cast	~ a spell: jeter un sort
//
// Everything before the first tab is the word. Bracketed and parenthesised
// notes are dropped from the rest, which is then cut down to the first
// translation. Comments (#) and malformed lines report ok == false.
func ParseLine(line string) (word, translation string, ok bool) {
	if line == "" || line[0] == '#' {
		return "", "", false
	}

	word, rest, found := strings.Cut(line, "\t")
	if !found {
		return "", "", false
	}
	word = strings.TrimSpace(word)

	rest = stripGroups(rest, '[', ']')
	rest = stripGroups(rest, '(', ')')

	colon := strings.IndexByte(rest, ':')
	tilde := strings.IndexByte(rest, '~')

	switch {
	case colon >= 0 && (tilde < 0 || colon < tilde):
		// "traduction: usage ~ example"
		translation = rest[:colon]
	case tilde >= 0 && colon > tilde:
		// "~ expression: traduction, ..."
		translation = rest[colon+1:]
		if stop := strings.IndexAny(translation, translationStops); stop >= 0 {
			translation = translation[:stop]
		}
	default:
		translation = rest
		if stop := strings.IndexAny(translation, translationStops); stop >= 0 {
			translation = translation[:stop]
		}
	}

	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return "", "", false
	}
	return word, translation, true
}

// stripGroups removes every open...close group. An unterminated group runs
// to the end of s.
func stripGroups(s string, open, close byte) string {
	for {
		start := strings.IndexByte(s, open)
		if start < 0 {
			return s
		}
		end := strings.IndexByte(s[start:], close)
		if end < 0 {
			return s[:start]
		}
		s = s[:start] + s[start+end+1:]
	}
}
