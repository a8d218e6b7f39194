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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/parlance/dictionary"
	"github.com/patrickmn/go-cache"
)

// Translator walks a sentence word by word, asking the user to pick when a
// word has several translations or needs a correction.
type Translator struct {
	dict  *dictionary.Dictionary
	cache *cache.Cache
	in    *bufio.Reader
	out   io.Writer
}

func NewTranslator(dict *dictionary.Dictionary, c *cache.Cache, in io.Reader, out io.Writer) *Translator {
	return &Translator{
		dict:  dict,
		cache: c,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// ReadSentence prompts for the text to translate.
func (t *Translator) ReadSentence() (string, error) {
	fmt.Fprintln(t.out, "Enter a text in the source language (no capitals or punctuation):")
	return t.readLine()
}

// TranslateSentence translates every whitespace separated word of sentence.
// Unknown words without suggestions take a manual replacement, which is
// remembered for the rest of the session; an empty reply drops the word.
func (t *Translator) TranslateSentence(sentence string) (string, error) {
	var translated []string

	for _, word := range strings.Fields(sentence) {
		translations := t.dict.Translations(word)

		if len(translations) == 0 {
			suggestions := GetOrFillSuggestions(t.cache, t.dict, word)
			if len(suggestions) == 0 {
				fmt.Fprintf(t.out, "The word %s'%s'%s is not in the dictionary. Type a replacement (ENTER to skip):\n", Warning, word, Reset)
				fmt.Fprint(t.out, "Your choice: ")
				reply, err := t.readLine()
				if err != nil {
					return "", err
				}
				if reply = strings.TrimSpace(reply); reply != "" {
					t.learn(word, reply)
					translated = append(translated, reply)
				}
				continue
			}

			fmt.Fprintf(t.out, "The word %s'%s'%s is not in the dictionary. Pick one of these suggestions:\n", Warning, word, Reset)
			choice, err := t.choose(suggestions)
			if err != nil {
				return "", err
			}
			word = suggestions[choice]
			translations = t.dict.Translations(word)
		}

		switch {
		case len(translations) == 1:
			translated = append(translated, translations[0])
		case len(translations) > 1:
			fmt.Fprintf(t.out, "Several translations exist for %s'%s'%s. Pick one:\n", Info, word, Reset)
			choice, err := t.choose(translations)
			if err != nil {
				return "", err
			}
			translated = append(translated, translations[choice])
		}
	}

	return strings.Join(translated, " "), nil
}

// learn records a manual replacement so later occurrences translate directly.
func (t *Translator) learn(word, translation string) {
	t.dict.Insert(word, translation)
	t.cache.Flush()
}

// choose lists options and returns the index picked by the user. Anything
// that is not a listed number falls back to the first option.
func (t *Translator) choose(options []string) (int, error) {
	for i, option := range options {
		fmt.Fprintf(t.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprint(t.out, "Your choice: ")

	reply, err := t.readLine()
	if err != nil {
		return 0, err
	}

	choice, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil || choice < 1 || choice > len(options) {
		fmt.Fprintln(t.out, "Invalid choice. Using the default (1.).")
		return 0, nil
	}
	return choice - 1, nil
}

// readLine returns the next line without its terminator. End of input reads
// as an empty line.
func (t *Translator) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
