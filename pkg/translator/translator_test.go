package translator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bastiangx/dictserve/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator() *Translator {
	opts := DefaultOptions()
	opts.BloomSize = 1 << 12
	tr := New(opts)
	tr.AddWord("book", "livre")
	tr.AddWord("book", "bouquin")
	tr.AddWord("books", "livres")
	tr.AddWord("cook", "cuisinier")
	return tr
}

func TestLookup(t *testing.T) {
	tr := newTestTranslator()

	assert.True(t, tr.Contains("book"))
	assert.False(t, tr.Contains("boo"))
	assert.False(t, tr.Contains("zebra"))
	assert.Equal(t, []string{"livre", "bouquin"}, tr.Translations("book"))
	assert.Equal(t, []string{}, tr.Translations("zebra"))
}

func TestComplete(t *testing.T) {
	tr := newTestTranslator()

	assert.Equal(t, []string{"book", "books"}, tr.Complete("boo", 0))
	assert.Equal(t, []string{"books"}, tr.Complete("book", 0))
	assert.Equal(t, []string{"book"}, tr.Complete("b", 1))
	assert.Equal(t, []string{}, tr.Complete("x", 5))
}

func TestSuggestCorrectionsCached(t *testing.T) {
	tr := newTestTranslator()

	first := tr.SuggestCorrections("bok")
	assert.ElementsMatch(t, []string{"book", "books"}, first)

	second := tr.SuggestCorrections("bok")
	assert.Equal(t, first, second)

	stats := tr.Stats()
	assert.Equal(t, 1, stats["cacheHits"])
	assert.Equal(t, 1, stats["cacheMisses"])
	assert.Equal(t, 1, stats["cacheItems"])

	// mutation invalidates cached lists
	tr.AddWord("boka", "x")
	assert.Equal(t, 0, tr.Stats()["cacheItems"])
	assert.Contains(t, tr.SuggestCorrections("bok"), "boka")
}

func TestSuggestCorrectionsWithoutCache(t *testing.T) {
	tr := New(Options{CacheEnabled: false})
	tr.AddWord("book", "livre")

	assert.Equal(t, []string{"book"}, tr.SuggestCorrections("bok"))
	_, ok := tr.Stats()["cacheHits"]
	assert.False(t, ok)
}

func TestRemoveWord(t *testing.T) {
	tr := newTestTranslator()

	require.NoError(t, tr.RemoveWord("books"))
	assert.False(t, tr.Contains("books"))
	assert.Equal(t, []string{"book"}, tr.Complete("boo", 0))
	assert.Equal(t, 2, tr.Stats()["words"])
	assert.Equal(t, 2, tr.Stats()["indexWords"])

	err := tr.RemoveWord("books")
	assert.ErrorIs(t, err, dictionary.ErrNotFound)

	tr.Clear()
	err = tr.RemoveWord("book")
	assert.ErrorIs(t, err, dictionary.ErrEmptyTree)
}

func TestTranslatePhrase(t *testing.T) {
	tr := newTestTranslator()

	tokens := tr.TranslatePhrase("  book   bok ", 0)
	require.Len(t, tokens, 2)

	assert.Equal(t, "book", tokens[0].Word)
	assert.True(t, tokens[0].Known)
	assert.Equal(t, []string{"livre", "bouquin"}, tokens[0].Translations)
	assert.Empty(t, tokens[0].Corrections)

	assert.Equal(t, "bok", tokens[1].Word)
	assert.False(t, tokens[1].Known)
	assert.ElementsMatch(t, []string{"book", "books"}, tokens[1].Corrections)

	assert.Len(t, tr.TranslatePhrase("book book book", 2), 2)
	assert.Empty(t, tr.TranslatePhrase("", 0))
}

func TestClear(t *testing.T) {
	tr := newTestTranslator()
	tr.SuggestCorrections("bok")

	tr.Clear()
	stats := tr.Stats()
	assert.Equal(t, 0, stats["words"])
	assert.Equal(t, -1, stats["height"])
	assert.Equal(t, 0, stats["indexWords"])
	assert.Equal(t, 0, stats["cacheItems"])
	assert.False(t, tr.Contains("book"))
	assert.Equal(t, []string{}, tr.SuggestCorrections("book"))
}

func TestSimilarity(t *testing.T) {
	tr := New(DefaultOptions())
	assert.InDelta(t, 0.75, tr.Similarity("ab", "abcd"), 1e-9)
}

func TestConcurrentAccess(t *testing.T) {
	tr := New(DefaultOptions())
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				word := fmt.Sprintf("w%02d%03d", g, i)
				tr.AddWord(word, "t")
				tr.Contains(word)
				tr.SuggestCorrections(word)
				tr.Complete("w0", 3)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 400, tr.Stats()["words"])
	assert.Equal(t, 400, tr.Stats()["indexWords"])
}
