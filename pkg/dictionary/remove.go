package dictionary

import "fmt"

// RemoveWord deletes word and all its translations. Both preconditions are
// checked before the tree is touched.
//
// Heights are left as they were and no rotation happens, so the tree stays
// ordered but may lose its balance.
func (d *Dictionary) RemoveWord(word string) error {
	if d.root == nil {
		return fmt.Errorf("remove %q: %w", word, ErrEmptyTree)
	}
	if !d.Contains(word) {
		return fmt.Errorf("remove %q: %w", word, ErrNotFound)
	}
	d.root = d.remove(d.root, word)
	return nil
}

func (d *Dictionary) remove(n *node, word string) *node {
	switch {
	case word < n.word:
		n.left = d.remove(n.left, word)
	case word > n.word:
		n.right = d.remove(n.right, word)
	case n.left != nil && n.right != nil:
		// Only the successor's word moves up; this node keeps its own
		// translations and the successor's are dropped with it.
		n.word = leftmost(n.right).word
		n.right = d.removeMin(n.right)
	default:
		child := n.left
		if child == nil {
			child = n.right
		}
		n.left, n.right = nil, nil
		d.count--
		return child
	}
	return n
}

func (d *Dictionary) removeMin(n *node) *node {
	if n.left != nil {
		n.left = d.removeMin(n.left)
		return n
	}
	right := n.right
	n.right = nil
	d.count--
	return right
}

func leftmost(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}
