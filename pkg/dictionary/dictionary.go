/*
Package dictionary stores words and their translations in an AVL tree.

Each distinct word owns one node holding its translations in insertion order,
duplicates included. Insertions rebalance the tree with single and double
rotations. Removals keep the ordering but never rebalance, so the tree can
drift out of AVL balance once words are removed.

	d := dictionary.New()
	d.AddWord("book", "livre")
	d.AddWord("book", "bouquin")
	d.Translations("book") // [livre bouquin]

	if err := d.RemoveWord("book"); errors.Is(err, dictionary.ErrNotFound) {
		...
	}

SuggestCorrections walks every node in pre-order and returns at most ten
words similar to a misspelled query, see package suggest for the scoring.

A Dictionary is not safe for concurrent use; callers serialize access.
*/
package dictionary

import (
	"errors"

	"github.com/bastiangx/dictserve/pkg/suggest"
)

var (
	// ErrEmptyTree is returned when removing from a dictionary with no words.
	ErrEmptyTree = errors.New("dictionary is empty")
	// ErrNotFound is returned when removing a word the dictionary lacks.
	ErrNotFound = errors.New("word not in dictionary")
)

// node is one distinct word. height is -1 for an empty subtree, 0 for a leaf.
type node struct {
	word         string
	translations []string
	left, right  *node
	height       int
}

func newNode(word, translation string) *node {
	return &node{
		word:         word,
		translations: []string{translation},
	}
}

// Dictionary maps words to translation lists.
type Dictionary struct {
	root  *node
	count int
}

func New() *Dictionary {
	return &Dictionary{}
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return d.count
}

// IsEmpty reports whether the dictionary holds no words.
func (d *Dictionary) IsEmpty() bool {
	return d.root == nil
}

// Height returns the cached height of the root, -1 when empty.
func (d *Dictionary) Height() int {
	return height(d.root)
}

// Similarity scores two words, in or out of the dictionary.
func (d *Dictionary) Similarity(a, b string) float64 {
	return suggest.Similarity(a, b)
}

// SuggestCorrections returns up to ten words resembling misspelled, in the
// order they entered the candidate list. An empty dictionary yields an empty
// slice.
func (d *Dictionary) SuggestCorrections(misspelled string) []string {
	acc := suggest.NewCorrections(misspelled)
	preorder(d.root, acc.Offer)
	return acc.Words()
}

// Clear releases every node, children before parents.
func (d *Dictionary) Clear() {
	d.release(d.root)
	d.root = nil
}

func (d *Dictionary) release(n *node) {
	if n == nil {
		return
	}
	d.release(n.left)
	d.release(n.right)
	n.left, n.right = nil, nil
	n.translations = nil
	d.count--
}

func preorder(n *node, visit func(word string)) {
	if n == nil {
		return
	}
	visit(n.word)
	preorder(n.left, visit)
	preorder(n.right, visit)
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}
