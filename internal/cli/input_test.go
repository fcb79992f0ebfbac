package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/dictserve/pkg/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(input string) (*InputHandler, *bytes.Buffer) {
	tr := translator.New(translator.DefaultOptions())
	tr.AddWord("book", "livre")
	tr.AddWord("book", "bouquin")
	tr.AddWord("books", "livres")

	var out bytes.Buffer
	return NewInputHandler(tr, strings.NewReader(input), &out, 100), &out
}

func TestTranslatePhraseWithCorrection(t *testing.T) {
	// menu 1, phrase, two bad picks, pick "books", its only translation,
	// then "bouquin" for "book", then quit
	h, out := newHandler("1\nbok book\n5\nx\n1\n0\n1\n0\n")

	require.NoError(t, h.Start())
	text := out.String()
	assert.Contains(t, text, "Word not found")
	assert.Contains(t, text, "Invalid choice")
	assert.Contains(t, text, "livres bouquin")
}

func TestUnknownWordWithoutCorrections(t *testing.T) {
	h, out := newHandler("1\nxyz\n0\n")

	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "No corrections available")
	assert.Contains(t, out.String(), "xyz")
}

func TestInvalidCommand(t *testing.T) {
	h, out := newHandler("9\n0\n")

	require.NoError(t, h.Start())
	assert.Contains(t, out.String(), "Invalid command")
}

func TestInputEndsMidPhrase(t *testing.T) {
	h, out := newHandler("1\nbok\n")

	assert.NoError(t, h.Start())
	assert.NotContains(t, out.String(), "Translated phrase")
}

func TestResolveKnownWord(t *testing.T) {
	h, _ := newHandler("1\n")

	word, err := h.resolveWord(translator.PhraseToken{Word: "book", Known: true, Translations: []string{"livre", "bouquin"}})
	require.NoError(t, err)
	assert.Equal(t, "bouquin", word)
}
