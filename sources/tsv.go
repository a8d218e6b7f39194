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
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

const (
	// Estimate ~40 bytes per line when sizing the duplicate filter
	bytesPerLineEstimate   = 40
	duplicateFalsePositive = 0.001
	minFilterCapacity      = 1024
	// How often the context is checked while scanning
	cancelCheckInterval = 1024
)

// TSVSource reads a tab-separated word list from disk.
type TSVSource struct {
	Path         string
	ShowProgress bool
	// Progress bar output, stderr when nil
	ProgressWriter io.Writer
}

func NewTSVSource(path string, showProgress bool) *TSVSource {
	return &TSVSource{Path: path, ShowProgress: showProgress}
}

func (s *TSVSource) Name() string {
	return "tsv:" + s.Path
}

func (s *TSVSource) Load(ctx context.Context, sink Sink) (Stats, error) {
	var stats Stats

	file, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, fmt.Errorf("dictionary file %s not found: %w", s.Path, err)
		}
		return stats, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer file.Close()

	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	estimatedLines := max(uint(size/bytesPerLineEstimate), minFilterCapacity)
	seen := bloom.NewWithEstimates(estimatedLines, duplicateFalsePositive)

	var bar *progressbar.ProgressBar
	if s.ShowProgress {
		bar = s.newProgressBar(size)
	}

	scanner := bufio.NewScanner(file)
	// Increase buffer size for long dictionary lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		stats.Lines++

		if bar != nil {
			// Progress is cosmetic; a render failure must not abort the load
			_ = bar.Add(len(line) + 1)
		}
		if stats.Lines%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}

		word, translation, ok := ParseLine(line)
		if !ok {
			stats.Skipped++
			continue
		}

		if seen.TestAndAddString(word + "\t" + translation) {
			stats.Duplicates++
		}
		sink.Insert(word, translation)
		stats.Pairs++
	}

	if bar != nil {
		bar.Finish()
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	log.Printf("Loaded %s from %s", stats, s.Path)
	return stats, nil
}

func (s *TSVSource) newProgressBar(size int64) *progressbar.ProgressBar {
	w := s.ProgressWriter
	if w == nil {
		w = os.Stderr
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("📖 Loading dictionary..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
