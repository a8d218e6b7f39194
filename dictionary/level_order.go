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
	"fmt"
	"io"
)

// LevelEntry describes one node of a breadth-first dump of the tree.
// Path is "1" for the root; a left child appends ".1" and a right child
// appends ".2" to its parent's path.
type LevelEntry struct {
	Word          string
	BalanceFactor int
	Path          string
}

// LevelOrder lists the nodes breadth-first, left to right.
func (d *Dictionary) LevelOrder() []LevelEntry {
	if d.Root == nil {
		return nil
	}

	type queued struct {
		node *AVLNode
		path string
	}

	entries := make([]LevelEntry, 0, d.count)
	queue := []queued{{d.Root, "1"}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		entries = append(entries, LevelEntry{
			Word:          cur.node.Key,
			BalanceFactor: balanceFactor(cur.node),
			Path:          cur.path,
		})

		if cur.node.Left != nil {
			queue = append(queue, queued{cur.node.Left, cur.path + ".1"})
		}
		if cur.node.Right != nil {
			queue = append(queue, queued{cur.node.Right, cur.path + ".2"})
		}
	}
	return entries
}

// WriteLevelOrder writes one "word, balance, path" line per node.
func (d *Dictionary) WriteLevelOrder(w io.Writer) error {
	for _, e := range d.LevelOrder() {
		if _, err := fmt.Fprintf(w, "%s, %d, %s\n", e.Word, e.BalanceFactor, e.Path); err != nil {
			return err
		}
	}
	return nil
}
