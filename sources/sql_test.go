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

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestNewSQLSourceRejectsBadIdentifiers(t *testing.T) {
	tests := []struct {
		table, word, translation string
	}{
		{"entries; DROP TABLE x", "word", "translation"},
		{"entries", "word name", "translation"},
		{"entries", "word", ""},
		{"1entries", "word", "translation"},
	}

	for _, tt := range tests {
		if _, err := NewSQLSource(nil, tt.table, tt.word, tt.translation); err == nil {
			t.Errorf("NewSQLSource(%q, %q, %q) = nil error; want error", tt.table, tt.word, tt.translation)
		}
	}
}

func TestSQLSourceLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"en", "fr"}).
		AddRow("car", "voiture").
		AddRow("cat", "chat").
		AddRow("cat", "chat").
		AddRow("cat", nil).
		AddRow("  ", "vide").
		AddRow("care", " soin ")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT en, fr FROM lexicon ORDER BY en")).WillReturnRows(rows)

	src, err := NewSQLSource(db, "lexicon", "en", "fr")
	if err != nil {
		t.Fatalf("NewSQLSource() = %v", err)
	}

	sink := &recordingSink{}
	stats, err := src.Load(context.Background(), sink)
	if err != nil {
		t.Fatalf("Load() = %v; want nil", err)
	}

	want := []pair{{"car", "voiture"}, {"cat", "chat"}, {"cat", "chat"}, {"care", "soin"}}
	if !reflect.DeepEqual(sink.pairs, want) {
		t.Errorf("pairs = %v; want %v", sink.pairs, want)
	}
	if wantStats := (Stats{Lines: 6, Pairs: 4, Skipped: 2, Duplicates: 1}); stats != wantStats {
		t.Errorf("stats = %+v; want %+v", stats, wantStats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

func TestSQLSourceQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer db.Close()

	boom := errors.New("no such table: entries")
	mock.ExpectQuery("SELECT word, translation FROM entries").WillReturnError(boom)

	src, _ := NewSQLSource(db, "entries", "word", "translation")
	if _, err := src.Load(context.Background(), &recordingSink{}); !errors.Is(err, boom) {
		t.Errorf("Load() = %v; want wrapped %v", err, boom)
	}
}
