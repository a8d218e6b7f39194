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

// Package dictionary implements a bilingual word dictionary stored in an
// AVL tree keyed by source word, with Levenshtein based "did you mean"
// suggestions.
//
// A Dictionary is not safe for concurrent mutation. Read-only methods may
// run concurrently with each other but never alongside Insert or Delete.
package dictionary

// Dictionary maps each source word to an ordered list of translations.
type Dictionary struct {
	Root  *AVLNode
	count int
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{Root: nil}
}

func height(node *AVLNode) int {
	if node == nil {
		return -1
	}
	return node.Height
}

func updateHeight(node *AVLNode) {
	node.Height = max(height(node.Left), height(node.Right)) + 1
}

func balanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return height(node.Left) - height(node.Right)
}

// rotateRight promotes the left child of node and returns it as the new
// subtree root.
func rotateRight(node *AVLNode) *AVLNode {
	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	// Child first: pivot's height depends on node's new height.
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft(node *AVLNode) *AVLNode {
	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL invariant at node, whose children are already
// balanced with correct heights, and returns the root of the subtree.
func rebalance(node *AVLNode) *AVLNode {
	bf := balanceFactor(node)

	// Left-heavy
	if bf > 1 {
		// An evenly balanced left child resolves with a single rotation.
		if height(node.Left.Left) >= height(node.Left.Right) {
			return rotateRight(node)
		}
		node.Left = rotateLeft(node.Left)
		return rotateRight(node)
	}

	// Right-heavy
	if bf < -1 {
		if height(node.Right.Right) >= height(node.Right.Left) {
			return rotateLeft(node)
		}
		node.Right = rotateRight(node.Right)
		return rotateLeft(node)
	}

	updateHeight(node)
	return node
}

// Insert records translation for word. A new word creates a node; a known
// word gets translation appended unless it already has it.
func (d *Dictionary) Insert(word, translation string) {
	d.Root, _ = d.insertRecursive(d.Root, word, translation)
}

// insertRecursive returns the new subtree root and whether a node was
// created below node. Only structural insertions rebalance.
func (d *Dictionary) insertRecursive(node *AVLNode, key, translation string) (*AVLNode, bool) {
	if node == nil {
		d.count++
		return newNode(key, translation), true
	}

	var grown bool
	if key < node.Key {
		node.Left, grown = d.insertRecursive(node.Left, key, translation)
	} else if key > node.Key {
		node.Right, grown = d.insertRecursive(node.Right, key, translation)
	} else {
		node.addTranslation(translation)
		return node, false
	}

	if !grown {
		return node, false
	}
	return rebalance(node), true
}

// Delete removes word and all of its translations. It returns
// ErrEmptyDictionary when there is nothing to delete and *ErrNotFound when
// word is absent; in both cases the dictionary is left untouched.
func (d *Dictionary) Delete(word string) error {
	if d.count == 0 {
		return ErrEmptyDictionary
	}

	root, err := d.deleteRecursive(d.Root, word)
	if err != nil {
		return err
	}
	d.Root = root
	d.count--
	return nil
}

// deleteRecursive never assigns a child slot before the recursive call below
// it has succeeded, so a miss leaves every node as it was.
func (d *Dictionary) deleteRecursive(node *AVLNode, key string) (*AVLNode, error) {
	if node == nil {
		return nil, &ErrNotFound{Word: key}
	}

	if key < node.Key {
		left, err := d.deleteRecursive(node.Left, key)
		if err != nil {
			return node, err
		}
		node.Left = left
	} else if key > node.Key {
		right, err := d.deleteRecursive(node.Right, key)
		if err != nil {
			return node, err
		}
		node.Right = right
	} else { // Found the node to delete
		// At most one child: splice it into the parent's slot
		if node.Left == nil {
			return node.Right, nil
		}
		if node.Right == nil {
			return node.Left, nil
		}

		// Two children: take over the in-order successor, then remove it
		successor := findMin(node.Right)
		node.Key = successor.Key
		node.Translations = successor.Translations
		right, err := d.deleteRecursive(node.Right, successor.Key)
		if err != nil {
			return node, err
		}
		node.Right = right
	}

	return rebalance(node), nil
}

func findMin(node *AVLNode) *AVLNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// Clear drops every word.
func (d *Dictionary) Clear() {
	d.Root = nil
	d.count = 0
}
