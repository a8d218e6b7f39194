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
	"math"
	"testing"

	"github.com/hbollon/go-edlib"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"cat", "cat", 0},
		{"cag", "cat", 1},
		{"cag", "care", 2},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"intention", "execution", 5},
	}

	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinDistanceMatchesEdlib(t *testing.T) {
	words := []string{"", "a", "cat", "car", "care", "cart", "scar", "contemplate", "template", "abacus", "bacus"}
	for _, a := range words {
		for _, b := range words {
			want := edlib.LevenshteinDistance(a, b)
			if got := LevenshteinDistance(a, b); got != want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d; edlib says %d", a, b, got, want)
			}
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"", "word", 0.0},
		{"cat", "cat", 1.0},
		{"cag", "cat", 2.0 / 3.0},
		{"cag", "care", 0.5},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarityProperties(t *testing.T) {
	words := []string{"", "a", "ab", "cat", "tac", "voiture", "soin", "chat", "care", "careful"}
	for _, a := range words {
		if got := Similarity(a, a); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v; want 1", a, a, got)
		}
		for _, b := range words {
			s := Similarity(a, b)
			if s < 0 || s > 1 {
				t.Errorf("Similarity(%q, %q) = %v; want within [0, 1]", a, b, s)
			}
			if r := Similarity(b, a); r != s {
				t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v", a, b, s, b, a, r)
			}
		}
	}
}
