package translator

import (
	"sync"
	"time"

	"github.com/bastiangx/dictserve/internal/logger"
	"github.com/bastiangx/dictserve/internal/utils"
	"github.com/bastiangx/dictserve/pkg/dictionary"
	"github.com/bastiangx/dictserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/willf/bloom"
)

// Options configures the side structures of a Translator
type Options struct {
	BloomSize    uint
	BloomHashes  uint
	CacheEnabled bool
	CacheTTL     time.Duration
	CacheCleanup time.Duration
}

// DefaultOptions mirrors the defaults of the config package
func DefaultOptions() Options {
	return Options{
		BloomSize:    1 << 20,
		BloomHashes:  5,
		CacheEnabled: true,
		CacheTTL:     30 * time.Minute,
		CacheCleanup: 5 * time.Minute,
	}
}

// Translator is a concurrency safe dictionary. The bloom filter is never
// shrunk on removal, so it only answers "definitely absent".
type Translator struct {
	mu     sync.RWMutex
	dict   *dictionary.Dictionary
	index  *suggest.PrefixIndex
	filter *bloom.BloomFilter
	cache  *suggest.CorrectionCache
	logs   *log.Logger
}

var _ ITranslator = (*Translator)(nil)

func New(opts Options) *Translator {
	if opts.BloomSize == 0 {
		opts.BloomSize = DefaultOptions().BloomSize
	}
	if opts.BloomHashes == 0 {
		opts.BloomHashes = DefaultOptions().BloomHashes
	}

	t := &Translator{
		dict:   dictionary.New(),
		index:  suggest.NewPrefixIndex(),
		filter: bloom.New(opts.BloomSize, opts.BloomHashes),
		logs:   logger.New("translator"),
	}
	if opts.CacheEnabled {
		t.cache = suggest.NewCorrectionCache(opts.CacheTTL, opts.CacheCleanup)
	}
	t.logs.Debugf("Translator created: bloom=%d/%d cache=%t", opts.BloomSize, opts.BloomHashes, opts.CacheEnabled)
	return t
}

func (t *Translator) AddWord(word, translation string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dict.AddWord(word, translation)
	t.index.Insert(word)
	t.filter.AddString(word)
	t.cache.Flush()
}

func (t *Translator) RemoveWord(word string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.dict.RemoveWord(word); err != nil {
		return err
	}
	t.index.Delete(word)
	t.cache.Flush()
	return nil
}

func (t *Translator) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.contains(word)
}

func (t *Translator) contains(word string) bool {
	if !t.filter.TestString(word) {
		return false
	}
	return t.dict.Contains(word)
}

func (t *Translator) Translations(word string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dict.Translations(word)
}

// SuggestCorrections serves from the cache when possible. The cache counters
// are written here, hence the write lock.
func (t *Translator) SuggestCorrections(word string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.suggest(word)
}

func (t *Translator) suggest(word string) []string {
	if words, ok := t.cache.Get(word); ok {
		return words
	}
	words := t.dict.SuggestCorrections(word)
	t.cache.Put(word, words)
	return words
}

func (t *Translator) Similarity(a, b string) float64 {
	return suggest.Similarity(a, b)
}

func (t *Translator) Complete(prefix string, limit int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.index.Complete(prefix, limit)
}

// TranslatePhrase splits phrase on whitespace and resolves each word.
// maxWords <= 0 means no limit.
func (t *Translator) TranslatePhrase(phrase string, maxWords int) []PhraseToken {
	words := utils.SplitPhrase(phrase, maxWords)

	t.mu.Lock()
	defer t.mu.Unlock()

	tokens := make([]PhraseToken, 0, len(words))
	for _, word := range words {
		token := PhraseToken{Word: word}
		if t.contains(word) {
			token.Known = true
			token.Translations = t.dict.Translations(word)
		} else {
			token.Corrections = t.suggest(word)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func (t *Translator) Stats() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := map[string]int{
		"words":      t.dict.Len(),
		"height":     t.dict.Height(),
		"indexWords": t.index.Len(),
	}
	for k, v := range t.cache.Stats() {
		stats[k] = v
	}
	return stats
}

// Clear empties the dictionary and every side structure
func (t *Translator) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dict.Clear()
	t.index.Reset()
	t.filter.ClearAll()
	t.cache.Flush()
	t.logs.Debug("Translator cleared")
}
