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
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/cybrota/parlance/dictionary"
)

func newFruitDictionary() *dictionary.Dictionary {
	dict := dictionary.New()
	for _, pair := range [][2]string{
		{"apple", "pomme"},
		{"banana", "banane"},
		{"cherry", "cerise"},
		{"date", "datte"},
	} {
		dict.Insert(pair[0], pair[1])
	}
	return dict
}

func TestDumpDictionary(t *testing.T) {
	testCases := []struct {
		name    string
		without []string
		want    string
	}{
		{
			name:    "full tree",
			without: nil,
			want: "banana, -1, 1\n" +
				"apple, 0, 1.1\n" +
				"cherry, -1, 1.2\n" +
				"date, 0, 1.2.2\n" +
				"Balanced: yes\nWords: 4\n",
		},
		{
			name:    "deleted and missing words",
			without: []string{"date", "fig"},
			want: "unable to find \"fig\" in dictionary\n" +
				"banana, 0, 1\n" +
				"apple, 0, 1.1\n" +
				"cherry, 0, 1.2\n" +
				"Balanced: yes\nWords: 3\n",
		},
		{
			name:    "emptied dictionary",
			without: []string{"apple", "banana", "cherry", "date", "apple"},
			want:    "dictionary is empty\nBalanced: yes\nWords: 0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := dumpDictionary(&out, newFruitDictionary(), tc.without); err != nil {
				t.Fatalf("dumpDictionary returned error: %v", err)
			}
			if out.String() != tc.want {
				t.Errorf("dumpDictionary output =\n%s\nwant\n%s", out.String(), tc.want)
			}
		})
	}
}

func TestPrintLookup(t *testing.T) {
	dict := newFruitDictionary()
	dict.Insert("apple", "pommier")

	var out bytes.Buffer
	if err := printLookup(&out, dict, "apple"); err != nil {
		t.Fatalf("printLookup(%q) returned error: %v", "apple", err)
	}
	if want := "1. pomme\n2. pommier\n"; out.String() != want {
		t.Errorf("printLookup(%q) output = %q; want %q", "apple", out.String(), want)
	}

	out.Reset()
	if err := printLookup(&out, dict, "appel"); err != nil {
		t.Fatalf("printLookup(%q) returned error: %v", "appel", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("• apple")) {
		t.Errorf("printLookup(%q) did not suggest apple: %q", "appel", out.String())
	}

	out.Reset()
	var notFound *dictionary.ErrNotFound
	if err := printLookup(&out, dict, "xylophone"); !errors.As(err, &notFound) || notFound.Word != "xylophone" {
		t.Errorf("printLookup(%q) = %v; want *ErrNotFound", "xylophone", err)
	}
}

func TestBrowseResults(t *testing.T) {
	dict := newFruitDictionary()
	c := NewSuggestionCache(time.Minute)

	testCases := []struct {
		query string
		want  []resultItem
	}{
		{"", []resultItem{
			{"apple", matchListing},
			{"banana", matchListing},
			{"cherry", matchListing},
			{"date", matchListing},
		}},
		{" cherry ", []resultItem{{"cherry", matchExact}}},
		{"dates", []resultItem{{"date", matchSuggestion}}},
		{"zzz", nil},
	}

	for _, tc := range testCases {
		got := browseResults(dict, c, tc.query)
		if len(got) != len(tc.want) {
			t.Errorf("browseResults(%q) = %v; want %v", tc.query, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("browseResults(%q)[%d] = %v; want %v", tc.query, i, got[i], tc.want[i])
			}
		}
	}
}

func TestTranslationCard(t *testing.T) {
	want := "# the\n\n1. le\n2. la\n"
	if got := translationCard("the", []string{"le", "la"}); got != want {
		t.Errorf("translationCard = %q; want %q", got, want)
	}
}
