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

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return searchNode(d.Root, word) != nil
}

// Translations returns a copy of the translations recorded for word, or an
// empty slice when word is absent.
func (d *Dictionary) Translations(word string) []string {
	node := searchNode(d.Root, word)
	if node == nil {
		return []string{}
	}
	return slices.Clone(node.Translations)
}

// searchNode is a helper function that descends the tree iteratively.
func searchNode(node *AVLNode, key string) *AVLNode {
	for node != nil {
		if key < node.Key {
			node = node.Left
		} else if key > node.Key {
			node = node.Right
		} else {
			return node
		}
	}
	return nil
}

// Size returns the number of distinct words.
func (d *Dictionary) Size() int {
	return d.count
}

func (d *Dictionary) IsEmpty() bool {
	return d.count == 0
}

// Height returns the height of the tree, -1 when empty.
func (d *Dictionary) Height() int {
	return height(d.Root)
}

// IsBalanced checks the AVL balance condition at every node.
func (d *Dictionary) IsBalanced() bool {
	return isBalanced(d.Root)
}

func isBalanced(node *AVLNode) bool {
	if node == nil {
		return true
	}
	if !isBalanced(node.Left) || !isBalanced(node.Right) {
		return false
	}
	bf := balanceFactor(node)
	return bf >= -1 && bf <= 1
}

// Walk visits every word in ascending order until fn returns false. fn
// receives a copy of the translations.
func (d *Dictionary) Walk(fn func(word string, translations []string) bool) {
	walk(d.Root, func(word string, translations []string) bool {
		return fn(word, slices.Clone(translations))
	})
}

func walk(node *AVLNode, fn func(string, []string) bool) bool {
	if node == nil {
		return true
	}
	if !walk(node.Left, fn) {
		return false
	}
	if !fn(node.Key, node.Translations) {
		return false
	}
	return walk(node.Right, fn)
}

// Words returns every word in ascending order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, d.count)
	walk(d.Root, func(word string, _ []string) bool {
		words = append(words, word)
		return true
	})
	return words
}
