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

import (
	"bytes"
	"reflect"
	"testing"
)

func newScenarioDictionary() *Dictionary {
	dict := New()
	dict.Insert("cat", "chat")
	dict.Insert("car", "voiture")
	dict.Insert("care", "soin")
	return dict
}

func TestScenario(t *testing.T) {
	dict := newScenarioDictionary()

	if !dict.Contains("cat") {
		t.Errorf("Contains(%q) = false; want true", "cat")
	}
	if got := dict.Translations("dog"); len(got) != 0 {
		t.Errorf("Translations(%q) = %v; want []", "dog", got)
	}

	want := []string{"car", "care", "cat"}
	if got := dict.SuggestCorrections("cag"); !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestCorrections(%q) = %v; want %v", "cag", got, want)
	}

	if err := dict.Delete("car"); err != nil {
		t.Fatalf("Delete(%q) = %v; want nil", "car", err)
	}
	if dict.Contains("car") || dict.Size() != 2 {
		t.Errorf("after Delete(%q): Contains = %v, Size = %d; want false, 2", "car", dict.Contains("car"), dict.Size())
	}
}

func TestSuggestCorrections(t *testing.T) {
	dict := New()
	for _, w := range []string{"bat", "cab", "can", "cap", "car", "cat", "caw", "cot", "dog", "zebra"} {
		dict.Insert(w, w+"-fr")
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"known word needs no correction", "cat", []string{}},
		{"truncated to first five in word order", "caz", []string{"cab", "can", "cap", "car", "cat"}},
		{"nothing close enough", "xylophone", []string{}},
		{"transposition costs two edits", "dgo", []string{}},
		{"zebra typo", "zebre", []string{"zebra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dict.SuggestCorrections(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestCorrections(%q) = %v; want %v", tt.query, got, tt.want)
			}
			if len(got) > SuggestionLimit {
				t.Errorf("SuggestCorrections(%q) returned %d entries", tt.query, len(got))
			}
			for _, s := range got {
				if s == tt.query {
					t.Errorf("SuggestCorrections(%q) suggested the query itself", tt.query)
				}
				if Similarity(tt.query, s) < SuggestionThreshold {
					t.Errorf("SuggestCorrections(%q) returned %q below threshold", tt.query, s)
				}
			}
		})
	}
}

func TestSuggestCorrectionsEmptyDictionary(t *testing.T) {
	if got := New().SuggestCorrections("anything"); got == nil || len(got) != 0 {
		t.Errorf("SuggestCorrections on empty dictionary = %#v; want empty slice", got)
	}
}

func TestLevelOrder(t *testing.T) {
	dict := New()
	for _, w := range []string{"apple", "banana", "cherry", "date"} {
		dict.Insert(w, w)
	}

	want := []LevelEntry{
		{Word: "banana", BalanceFactor: -1, Path: "1"},
		{Word: "apple", BalanceFactor: 0, Path: "1.1"},
		{Word: "cherry", BalanceFactor: -1, Path: "1.2"},
		{Word: "date", BalanceFactor: 0, Path: "1.2.2"},
	}
	if got := dict.LevelOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("LevelOrder() = %v; want %v", got, want)
	}

	var buf bytes.Buffer
	if err := dict.WriteLevelOrder(&buf); err != nil {
		t.Fatalf("WriteLevelOrder() = %v", err)
	}
	wantText := "banana, -1, 1\napple, 0, 1.1\ncherry, -1, 1.2\ndate, 0, 1.2.2\n"
	if buf.String() != wantText {
		t.Errorf("WriteLevelOrder() wrote %q; want %q", buf.String(), wantText)
	}

	if got := New().LevelOrder(); len(got) != 0 {
		t.Errorf("LevelOrder() on empty dictionary = %v; want none", got)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	dict := New()
	for _, w := range []string{"e", "d", "c", "b", "a"} {
		dict.Insert(w, w)
	}

	var seen []string
	dict.Walk(func(word string, _ []string) bool {
		seen = append(seen, word)
		return len(seen) < 3
	})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("Walk visited %v; want %v", seen, want)
	}
}

func TestWalkPassesCopies(t *testing.T) {
	dict := New()
	dict.Insert("the", "le")
	dict.Insert("the", "la")

	dict.Walk(func(_ string, translations []string) bool {
		translations[0] = "mutated"
		return true
	})
	if got, want := dict.Translations("the"), []string{"le", "la"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Translations(%q) = %v after Walk mutation; want %v", "the", got, want)
	}
}
