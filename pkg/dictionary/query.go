package dictionary

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	return find(d.root, word) != nil
}

// Translations returns a copy of the translations of word, or an empty
// slice when the word is absent.
func (d *Dictionary) Translations(word string) []string {
	n := find(d.root, word)
	if n == nil {
		return []string{}
	}
	out := make([]string, len(n.translations))
	copy(out, n.translations)
	return out
}

func find(n *node, word string) *node {
	for n != nil {
		switch {
		case word == n.word:
			return n
		case word < n.word:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}
