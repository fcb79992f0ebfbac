package suggest

import (
	"errors"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex keeps the dictionary words in a patricia trie for prefix
// completion. It holds words only, never translations.
type PrefixIndex struct {
	trie  *patricia.Trie
	words int
}

func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{trie: patricia.NewTrie()}
}

// Insert adds word, ignoring duplicates.
func (p *PrefixIndex) Insert(word string) {
	if p.trie.Insert(patricia.Prefix(word), struct{}{}) {
		p.words++
	}
}

// Delete removes word if present.
func (p *PrefixIndex) Delete(word string) {
	if p.trie.Delete(patricia.Prefix(word)) {
		p.words--
	}
}

// Len returns the number of indexed words.
func (p *PrefixIndex) Len() int {
	return p.words
}

// Reset drops every indexed word.
func (p *PrefixIndex) Reset() {
	p.trie = patricia.NewTrie()
	p.words = 0
}

// Complete returns up to limit words starting with prefix, in byte order.
// The prefix itself is skipped when it is a word. limit <= 0 means no limit.
func (p *PrefixIndex) Complete(prefix string, limit int) []string {
	var words []string

	err := p.trie.VisitSubtree(patricia.Prefix(prefix), func(key patricia.Prefix, _ patricia.Item) error {
		word := string(key)
		if word == prefix {
			return nil
		}
		words = append(words, word)
		return nil
	})
	if err != nil && !errors.Is(err, patricia.SkipSubtree) {
		log.Errorf("Error visiting prefix index: %v", err)
	}

	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	if words == nil {
		return []string{}
	}
	return words
}
