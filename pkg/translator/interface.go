// Package translator wraps the dictionary core with the lookup structures the
// server and CLI need: a prefix index, a bloom prefilter and a correction cache.
package translator

// ITranslator defines what the IPC server and the CLI need from a dictionary
type ITranslator interface {
	// AddWord records a translation, creating the word when needed
	AddWord(word, translation string)

	// RemoveWord deletes a word and its translations
	RemoveWord(word string) error

	Contains(word string) bool
	Translations(word string) []string

	// SuggestCorrections lists up to ten dictionary words close to word
	SuggestCorrections(word string) []string

	Similarity(a, b string) float64

	// Complete returns dictionary words starting with prefix
	Complete(prefix string, limit int) []string

	// TranslatePhrase looks up each word of a phrase
	TranslatePhrase(phrase string, maxWords int) []PhraseToken

	Stats() map[string]int
	Clear()
}

// PhraseToken is one word of a translated phrase. Known words carry their
// translations, unknown ones carry correction candidates.
type PhraseToken struct {
	Word         string
	Known        bool
	Translations []string
	Corrections  []string
}
