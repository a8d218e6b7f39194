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

package dictionary

const (
	// SuggestionLimit caps the number of corrections returned.
	SuggestionLimit = 5
	// SuggestionThreshold is the minimum Similarity for a correction.
	SuggestionThreshold = 0.5
)

// SuggestCorrections proposes up to SuggestionLimit dictionary words close
// to word. Candidates come out in ascending word order, not by score, and
// the first SuggestionLimit of them are kept. A word already in the
// dictionary needs no correction and yields an empty slice.
func (d *Dictionary) SuggestCorrections(word string) []string {
	suggestions := []string{}
	if d.Contains(word) {
		return suggestions
	}

	walk(d.Root, func(candidate string, _ []string) bool {
		if Similarity(word, candidate) >= SuggestionThreshold {
			suggestions = append(suggestions, candidate)
		}
		return len(suggestions) < SuggestionLimit
	})
	return suggestions
}
