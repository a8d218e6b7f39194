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
	"database/sql"
	"fmt"
	"log"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DBQuerier is satisfied by *sql.DB and *sql.Tx.
type DBQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// SQLSource reads pairs from a two-column table of an SQLite or MySQL
// database.
type SQLSource struct {
	DB                DBQuerier
	Table             string
	WordColumn        string
	TranslationColumn string
}

// NewSQLSource validates the table and column names, which are spliced
// into the query text.
func NewSQLSource(db DBQuerier, table, wordColumn, translationColumn string) (*SQLSource, error) {
	for _, ident := range []string{table, wordColumn, translationColumn} {
		if !identifierPattern.MatchString(ident) {
			return nil, fmt.Errorf("invalid SQL identifier %q", ident)
		}
	}
	return &SQLSource{
		DB:                db,
		Table:             table,
		WordColumn:        wordColumn,
		TranslationColumn: translationColumn,
	}, nil
}

func (s *SQLSource) Name() string {
	return "sql:" + s.Table
}

func (s *SQLSource) query() string {
	return fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s",
		s.WordColumn, s.TranslationColumn, s.Table, s.WordColumn)
}

func (s *SQLSource) Load(ctx context.Context, sink Sink) (Stats, error) {
	var stats Stats

	rows, err := s.DB.QueryContext(ctx, s.query())
	if err != nil {
		return stats, fmt.Errorf("query %s: %w", s.Table, err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var word, translation sql.NullString
		if err := rows.Scan(&word, &translation); err != nil {
			return stats, fmt.Errorf("scan %s: %w", s.Table, err)
		}
		stats.Lines++

		w := strings.TrimSpace(word.String)
		t := strings.TrimSpace(translation.String)
		if !word.Valid || !translation.Valid || w == "" || t == "" {
			stats.Skipped++
			continue
		}

		key := w + "\t" + t
		if _, dup := seen[key]; dup {
			stats.Duplicates++
		}
		seen[key] = struct{}{}

		sink.Insert(w, t)
		stats.Pairs++
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("read %s: %w", s.Table, err)
	}

	log.Printf("Loaded %s from table %s", stats, s.Table)
	return stats, nil
}
