package dictionary

// AddWord inserts word with translation. A word already present gets the
// translation appended, with no change to the tree shape.
func (d *Dictionary) AddWord(word, translation string) {
	d.root = d.insert(d.root, word, translation)
}

func (d *Dictionary) insert(n *node, word, translation string) *node {
	if n == nil {
		d.count++
		return newNode(word, translation)
	}

	switch {
	case word == n.word:
		n.translations = append(n.translations, translation)
		return n
	case word < n.word:
		n.left = d.insert(n.left, word, translation)
		if height(n.left)-height(n.right) == 2 {
			if word < n.left.word {
				return rotateWithLeftChild(n)
			}
			return doubleWithLeftChild(n)
		}
	default:
		n.right = d.insert(n.right, word, translation)
		if height(n.right)-height(n.left) == 2 {
			// equal keys take the single rotation
			if n.right.word <= word {
				return rotateWithRightChild(n)
			}
			return doubleWithRightChild(n)
		}
	}

	n.height = 1 + max(height(n.left), height(n.right))
	return n
}

// rotateWithLeftChild fixes a left-left imbalance at k2.
func rotateWithLeftChild(k2 *node) *node {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	k2.height = 1 + max(height(k2.left), height(k2.right))
	k1.height = 1 + max(height(k1.left), k2.height)
	return k1
}

// rotateWithRightChild fixes a right-right imbalance at k2.
func rotateWithRightChild(k2 *node) *node {
	k1 := k2.right
	k2.right = k1.left
	k1.left = k2
	k2.height = 1 + max(height(k2.right), height(k2.left))
	k1.height = 1 + max(height(k1.right), k2.height)
	return k1
}

// doubleWithLeftChild fixes a left-right imbalance at k3.
func doubleWithLeftChild(k3 *node) *node {
	k3.left = rotateWithRightChild(k3.left)
	return rotateWithLeftChild(k3)
}

// doubleWithRightChild fixes a right-left imbalance at k3.
func doubleWithRightChild(k3 *node) *node {
	k3.right = rotateWithLeftChild(k3.right)
	return rotateWithRightChild(k3)
}
