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
	"fmt"
)

// Sink receives (word, translation) pairs one at a time.
// *dictionary.Dictionary satisfies it.
type Sink interface {
	Insert(word, translation string)
}

// Source feeds a dictionary from an external word list
type Source interface {
	Name() string
	Load(ctx context.Context, sink Sink) (Stats, error)
}

// Stats summarises a single load.
type Stats struct {
	Lines      int // Lines or rows read
	Pairs      int // Pairs handed to the sink
	Skipped    int // Comments, headers and malformed entries
	Duplicates int // Pairs probably seen before (approximate)
}

func (s Stats) String() string {
	return fmt.Sprintf("%d pairs from %d lines (%d skipped, ~%d duplicates)",
		s.Pairs, s.Lines, s.Skipped, s.Duplicates)
}
