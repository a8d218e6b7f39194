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
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/cybrota/parlance/dictionary"
	"github.com/cybrota/parlance/sources"
)

// driverNames maps configured sources to database/sql driver names
var driverNames = map[string]string{
	SourceSQLite: "sqlite3",
	SourceMySQL:  "mysql",
}

// openSource builds the source described by config. The returned close
// function must be called once loading is done.
func openSource(config *Config) (sources.Source, func() error, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	dc := config.Dictionary
	noop := func() error { return nil }

	switch dc.Source {
	case SourceTSV:
		return sources.NewTSVSource(expandHome(dc.Path), dc.ShowProgress), noop, nil
	case SourceSQLite, SourceMySQL:
		dsn := dc.DSN
		if dc.Source == SourceSQLite {
			path := expandHome(dc.Path)
			if _, err := os.Stat(path); err != nil {
				return nil, nil, fmt.Errorf("sqlite dictionary %s: %w", path, err)
			}
			dsn = "file:" + path + "?mode=ro"
		}

		db, err := sql.Open(driverNames[dc.Source], dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s dictionary: %w", dc.Source, err)
		}
		src, err := sources.NewSQLSource(db, dc.Table, dc.WordColumn, dc.TranslationColumn)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return src, db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown dictionary source %q", dc.Source)
}

// loadDictionary fills a fresh dictionary from the configured source.
func loadDictionary(ctx context.Context, config *Config) (*dictionary.Dictionary, sources.Stats, error) {
	src, closeSource, err := openSource(config)
	if err != nil {
		return nil, sources.Stats{}, err
	}
	defer closeSource()

	dict := dictionary.New()
	stats, err := src.Load(ctx, dict)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to load %s: %w", src.Name(), err)
	}
	return dict, stats, nil
}
