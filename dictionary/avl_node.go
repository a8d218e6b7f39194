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

import "slices"

// AVLNode holds one source word and every translation recorded for it.
type AVLNode struct {
	Key          string   // Source-language word (e.g., "contemplate")
	Translations []string // Insertion order, no duplicates, never empty
	Height       int      // Leaf = 0, absent subtree = -1
	Left         *AVLNode
	Right        *AVLNode
}

func newNode(key, translation string) *AVLNode {
	return &AVLNode{
		Key:          key,
		Translations: []string{translation},
		Height:       0,
	}
}

// addTranslation appends translation unless the node already carries it.
func (n *AVLNode) addTranslation(translation string) bool {
	if slices.Contains(n.Translations, translation) {
		return false
	}
	n.Translations = append(n.Translations, translation)
	return true
}
