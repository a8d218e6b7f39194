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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/cybrota/parlance/dictionary"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Parlance %s**

Translate text word by word from a bilingual dictionary, with "did you mean" suggestions for misspelled words.

Built with Go %s

# 1. Commands
* **translate** [sentence]: translate a sentence, choosing among translations and corrections
* **lookup** <word>: show the translations of a word, or suggestions when it is unknown
* **suggest** <word>: show up to %d dictionary words similar to a word
* **similarity** <a> <b>: print the similarity score (0 to 1) of two words
* **dump**: print the dictionary tree level by level and check its balance
* **browse**: interactive dictionary browser
* **settings**: show (and create) the configuration file

# 2. Dictionary sources
* Tab-separated text file: one "word<TAB>translation" entry per line, # for comments
* SQLite database file or MySQL DSN with a word/translation table

# 3. Suggestions
Words whose similarity reaches %.1f are suggested in alphabetical order.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), dictionary.SuggestionLimit, dictionary.SuggestionThreshold)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
